// Package async models futures, joins, races, cancellation, streams and
// async-aware synchronisation on top of goroutines, channels and context.
package async

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("异步编程演示")
	fmt.Println("------------")

	ctx := context.Background()

	section("Future：启动与等待")
	demoFuture(ctx)

	section("join：errgroup 等待全部完成")
	demoJoin(ctx)

	section("select：竞速与超时")
	demoRace(ctx)

	section("取消：context 向下传播")
	demoCancel(ctx)

	section("流：基于 channel 的异步序列")
	demoStream(ctx)

	section("重试与指数退避")
	demoRetry(ctx)

	section("异步同步原语：信号量与 singleflight")
	demoSync(ctx)

	fmt.Println("\n异步编程演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

// Future holds the eventual result of a function started with Spawn.
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Spawn runs f on its own goroutine and returns immediately.
func Spawn[T any](ctx context.Context, f func(context.Context) (T, error)) *Future[T] {
	fut := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(fut.done)
		fut.val, fut.err = f(ctx)
	}()
	return fut
}

// Await blocks until the result is ready or ctx ends.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Ready reports whether Await would return without blocking.
func (f *Future[T]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// sleep waits d or until ctx ends.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func fetchUser(ctx context.Context, id int) (string, error) {
	if err := sleep(ctx, time.Duration(id)*time.Millisecond); err != nil {
		return "", err
	}
	if id < 0 {
		return "", fmt.Errorf("user %d: invalid id", id)
	}
	return fmt.Sprintf("user-%d", id), nil
}

func demoFuture(ctx context.Context) {
	fut := Spawn(ctx, func(ctx context.Context) (string, error) { return fetchUser(ctx, 5) })
	fmt.Println("  Spawn 立即返回，任务在后台执行")
	v, err := fut.Await(ctx)
	fmt.Println("  Await 得到:", v, "错误:", err)
	fmt.Println("  完成后 Ready() =", fut.Ready())
}

// JoinAll runs every function concurrently and returns results in input
// order. The first error cancels the rest.
func JoinAll[T any](ctx context.Context, fs ...func(context.Context) (T, error)) ([]T, error) {
	g, ctx := errgroup.WithContext(ctx)
	out := make([]T, len(fs))
	for i, f := range fs {
		g.Go(func() error {
			v, err := f(ctx)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func user(id int) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) { return fetchUser(ctx, id) }
}

func demoJoin(ctx context.Context) {
	start := time.Now()
	users, err := JoinAll(ctx, user(30), user(10), user(20))
	fmt.Println("  结果按提交顺序:", users, "错误:", err)
	fmt.Println("  并发执行，总耗时小于串行之和:", time.Since(start) < 60*time.Millisecond)

	_, err = JoinAll(ctx, user(10), user(-1))
	fmt.Println("  任一失败即返回:", err)
}

// ErrNoWinner is returned by Race when every contender fails.
var ErrNoWinner = errors.New("no contender succeeded")

// Race returns the first successful result and cancels the others.
func Race[T any](ctx context.Context, fs ...func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		v   T
		err error
	}
	results := make(chan result, len(fs))
	for _, f := range fs {
		go func() {
			v, err := f(ctx)
			results <- result{v, err}
		}()
	}
	var errs []error
	for range fs {
		r := <-results
		if r.err == nil {
			return r.v, nil
		}
		errs = append(errs, r.err)
	}
	var zero T
	return zero, fmt.Errorf("%w: %w", ErrNoWinner, errors.Join(errs...))
}

func demoRace(ctx context.Context) {
	v, err := Race(ctx, user(40), user(5), user(20))
	fmt.Println("  最快的胜出:", v, err)

	ctx2, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	_, err = fetchUser(ctx2, 200)
	fmt.Println("  超时:", errors.Is(err, context.DeadlineExceeded))

	select {
	case <-time.After(5 * time.Millisecond):
		fmt.Println("  select + time.After 实现单次超时分支")
	case <-ctx.Done():
	}
}

// worker counts steps until ctx is cancelled.
func worker(ctx context.Context, step time.Duration) (int, error) {
	n := 0
	for {
		if err := sleep(ctx, step); err != nil {
			return n, err
		}
		n++
	}
}

func demoCancel(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	fut := Spawn(ctx, func(ctx context.Context) (int, error) { return worker(ctx, time.Millisecond) })
	time.Sleep(15 * time.Millisecond)
	cancel()
	n, err := fut.Await(context.Background())
	fmt.Println("  取消后 worker 退出:", errors.Is(err, context.Canceled), "已执行步数 > 0:", n > 0)

	ctx2, cancel2 := context.WithCancelCause(context.Background())
	cancel2(errors.New("配置已变更"))
	fmt.Println("  取消原因:", context.Cause(ctx2))
}

// Stream emits values produced by next until it reports false or ctx ends.
// The channel is closed when the stream ends.
func Stream[T any](ctx context.Context, next func() (T, bool)) <-chan T {
	ch := make(chan T)
	go func() {
		defer close(ch)
		for {
			v, ok := next()
			if !ok {
				return
			}
			select {
			case ch <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Throttle forwards values from in no faster than one per interval.
func Throttle[T any](ctx context.Context, in <-chan T, interval time.Duration) <-chan T {
	out := make(chan T)
	go func() {
		defer close(out)
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for v := range in {
			select {
			case <-tick.C:
			case <-ctx.Done():
				return
			}
			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func counter(limit int) func() (int, bool) {
	i := 0
	return func() (int, bool) {
		i++
		return i, i <= limit
	}
}

func demoStream(ctx context.Context) {
	sum := 0
	for v := range Stream(ctx, counter(5)) {
		sum += v
	}
	fmt.Println("  流求和 1..5 =", sum)

	var got []int
	for v := range Throttle(ctx, Stream(ctx, counter(3)), 2*time.Millisecond) {
		got = append(got, v)
	}
	fmt.Println("  节流后依次收到:", got)

	ctx2, cancel := context.WithCancel(ctx)
	infinite := Stream(ctx2, counter(1<<30))
	first := []int{<-infinite, <-infinite}
	cancel()
	fmt.Println("  取消无限流前取到:", first)
}

// Retry calls f up to attempts times, doubling the delay after each failure.
func Retry(ctx context.Context, attempts int, base time.Duration, f func(context.Context) error) error {
	attempts = max(attempts, 1)
	var err error
	delay := base
	for i := range attempts {
		if err = f(ctx); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		if serr := sleep(ctx, delay); serr != nil {
			return serr
		}
		delay *= 2
	}
	return fmt.Errorf("after %d attempts: %w", attempts, err)
}

func demoRetry(ctx context.Context) {
	calls := 0
	err := Retry(ctx, 5, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("连接被拒绝")
		}
		return nil
	})
	fmt.Println("  第", calls, "次成功，错误:", err)

	err = Retry(ctx, 2, time.Millisecond, func(context.Context) error { return errors.New("服务不可用") })
	fmt.Println("  放弃:", err)
}

// boundedMap applies f to every item with at most limit calls in flight.
// It also reports the highest concurrency observed.
func boundedMap(ctx context.Context, items []int, limit int64, f func(int) int) ([]int, int64, error) {
	sem := semaphore.NewWeighted(limit)
	var inFlight, peak atomic.Int64
	var g errgroup.Group
	out := make([]int, len(items))
	var err error
	for i, it := range items {
		if err = sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			cur := inFlight.Add(1)
			for p := peak.Load(); cur > p && !peak.CompareAndSwap(p, cur); p = peak.Load() {
			}
			out[i] = f(it)
			inFlight.Add(-1)
			return nil
		})
	}
	_ = g.Wait()
	if err != nil {
		return nil, peak.Load(), fmt.Errorf("acquire: %w", err)
	}
	return out, peak.Load(), nil
}

// loadShared deduplicates concurrent loads of the same key.
func loadShared(ctx context.Context, g *singleflight.Group, key string, n int, load func() (string, error)) ([]string, error) {
	futs := make([]*Future[string], n)
	for i := range n {
		futs[i] = Spawn(ctx, func(context.Context) (string, error) {
			v, err, _ := g.Do(key, func() (any, error) { return load() })
			if err != nil {
				return "", err
			}
			return v.(string), nil
		})
	}
	out := make([]string, n)
	for i, f := range futs {
		v, err := f.Await(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func demoSync(ctx context.Context) {
	sq, peak, err := boundedMap(ctx, []int{1, 2, 3, 4, 5, 6}, 2, func(x int) int {
		time.Sleep(2 * time.Millisecond)
		return x * x
	})
	fmt.Println("  信号量限制并发为 2:", sq, "峰值 <= 2:", peak <= 2, err)

	var g singleflight.Group
	var loads atomic.Int32
	vals, err := loadShared(ctx, &g, "config", 5, func() (string, error) {
		loads.Add(1)
		time.Sleep(10 * time.Millisecond)
		return "v1", nil
	})
	fmt.Println("  5 个并发请求得到:", vals, err)
	fmt.Println("  实际加载次数不超过请求数:", loads.Load() <= 5)
}
