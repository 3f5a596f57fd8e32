// Package concurrency covers goroutines, channels, shared state, atomics,
// condition variables, barriers, worker pools and structured goroutine
// groups from golang.org/x/sync and github.com/sourcegraph/conc.
//
// Every goroutine started by a demo is joined before the demo returns, and
// only the calling goroutine prints, so output is deterministic.
package concurrency

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"
	conciter "github.com/sourcegraph/conc/iter"
	concpool "github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/errgroup"
)

// Run prints every lesson of the tutorial.
func Run() {
	fmt.Println("并发编程演示")
	fmt.Println("------------")

	section("goroutine 与 sync.WaitGroup")
	demoGoroutines()

	section("channel：消息传递")
	demoChannels()

	section("共享状态：sync.Mutex")
	demoMutex()

	section("原子操作：sync/atomic")
	demoAtomic()

	section("条件变量：sync.Cond")
	demoCond()

	section("读写锁：sync.RWMutex")
	demoRWMutex()

	section("屏障：所有参与者到齐后继续")
	demoBarrier()

	section("工作池：有界队列与优雅关闭")
	demoPool()

	section("errgroup：限流与首个错误")
	demoErrgroup()

	section("conc：捕获 panic 的 WaitGroup 与有序并行映射")
	demoConc()

	fmt.Println("\n并发编程演示完成！")
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}

func demoGoroutines() {
	var wg sync.WaitGroup
	results := make([]int, 5)

	for i := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = i * i // each goroutine owns one slot, no lock needed
		}()
	}
	wg.Wait()
	fmt.Println("  5 个 goroutine 的结果:", results)

	// Go 1.25 adds wg.Go; with 1.24 the Add/Done pair is explicit.
	fmt.Println("  规则：启动 goroutine 的一方负责等待它结束")
}

// producer sends n tagged values. The consumer side closes out once every
// producer is done.
func producer(id, n int, out chan<- string, wg *sync.WaitGroup) {
	defer wg.Done()
	for i := range n {
		out <- fmt.Sprintf("p%d-%d", id, i)
	}
}

func demoChannels() {
	// Unbuffered: send and receive rendezvous.
	ping := make(chan string)
	go func() { ping <- "ping" }()
	fmt.Println("  无缓冲 channel 收到:", <-ping)

	// Multiple producers, single consumer.
	out := make(chan string, 4)
	var wg sync.WaitGroup
	for id := range 3 {
		wg.Add(1)
		go producer(id, 2, out, &wg)
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	var msgs []string
	for m := range out {
		msgs = append(msgs, m)
	}
	sort.Strings(msgs)
	fmt.Println("  多生产者消息 (排序后):", msgs)

	// select with a timeout.
	slow := make(chan int)
	select {
	case v := <-slow:
		fmt.Println("  不会到达", v)
	case <-time.After(5 * time.Millisecond):
		fmt.Println("  select 超时分支触发")
	}
}

// SafeCounter guards a map with a Mutex.
type SafeCounter struct {
	mu sync.Mutex
	m  map[string]int
}

func NewSafeCounter() *SafeCounter { return &SafeCounter{m: map[string]int{}} }

func (c *SafeCounter) Inc(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key]++
}

func (c *SafeCounter) Value(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m[key]
}

func demoMutex() {
	c := NewSafeCounter()
	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc("hits")
		}()
	}
	wg.Wait()
	fmt.Println("  100 个 goroutine 加锁计数:", c.Value("hits"))
}

func demoAtomic() {
	var n atomic.Int64
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				n.Add(1)
			}
		}()
	}
	wg.Wait()
	fmt.Println("  atomic.Int64 计数:", n.Load())

	var flag atomic.Bool
	fmt.Println("  CompareAndSwap(false→true):", flag.CompareAndSwap(false, true))
	fmt.Println("  再次 CompareAndSwap:", flag.CompareAndSwap(false, true))
}

// Queue is a blocking FIFO built on sync.Cond.
type Queue struct {
	mu    sync.Mutex
	cond  *sync.Cond
	items []int
}

func NewQueue() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *Queue) Put(v int) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
	q.cond.Signal()
}

// Get blocks until an item is available.
func (q *Queue) Get() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 {
		q.cond.Wait()
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v
}

func demoCond() {
	q := NewQueue()
	got := make(chan []int)
	go func() {
		var vs []int
		for range 3 {
			vs = append(vs, q.Get())
		}
		got <- vs
	}()
	for _, v := range []int{7, 8, 9} {
		q.Put(v)
	}
	fmt.Println("  消费者按顺序取到:", <-got)
}

// Config is read often and written rarely.
type Config struct {
	mu   sync.RWMutex
	vals map[string]string
}

func (c *Config) Get(k string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals[k]
}

func (c *Config) Set(k, v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals[k] = v
}

func demoRWMutex() {
	cfg := &Config{vals: map[string]string{"mode": "dev"}}
	var reads atomic.Int64
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if cfg.Get("mode") != "" {
				reads.Add(1)
			}
		}()
	}
	wg.Wait()
	cfg.Set("mode", "prod")
	fmt.Println("  并发读取次数:", reads.Load(), "写入后 mode =", cfg.Get("mode"))
}

// Barrier releases all parties once n of them have arrived. It is reusable.
type Barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	n     int
	count int
	cycle int
}

func NewBarrier(n int) *Barrier {
	b := &Barrier{n: n}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until all parties of the current cycle have arrived.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()
	cycle := b.cycle
	b.count++
	if b.count == b.n {
		b.count = 0
		b.cycle++
		b.cond.Broadcast()
		return
	}
	for cycle == b.cycle {
		b.cond.Wait()
	}
}

// phases runs workers through two barrier-separated phases. It reports how
// many workers saw phase one complete on entering phase two, and how many
// finished phase two.
func phases(workers int) (phase1, phase2 int) {
	b := NewBarrier(workers)
	var p1, p2 atomic.Int64
	var after1 atomic.Int64

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p1.Add(1)
			b.Wait()
			// Every worker has finished phase 1 before anyone gets here.
			if p1.Load() == int64(workers) {
				after1.Add(1)
			}
			p2.Add(1)
			b.Wait()
		}()
	}
	wg.Wait()
	return int(after1.Load()), int(p2.Load())
}

func demoBarrier() {
	ok, done := phases(4)
	fmt.Printf("  第二阶段开始时看到第一阶段全部完成的 worker: %d/4\n", ok)
	fmt.Printf("  完成第二阶段的 worker: %d/4\n", done)
}

func demoPool() {
	pool := NewPool(PoolConfig{Workers: 3, QueueSize: 10, ShutdownTimeout: time.Second})

	var mu sync.Mutex
	var processed []int
	errRejected := errors.New("order rejected")

	for id := 1; id <= 8; id++ {
		err := pool.Submit(context.Background(), func(ctx context.Context) error {
			if id == 5 {
				return errRejected
			}
			mu.Lock()
			processed = append(processed, id)
			mu.Unlock()
			return nil
		})
		if err != nil {
			fmt.Println("  提交失败:", err)
		}
	}

	if err := pool.Shutdown(); err != nil {
		fmt.Println("  关闭:", err)
	}
	if err := pool.Submit(context.Background(), func(context.Context) error { return nil }); errors.Is(err, ErrPoolClosed) {
		fmt.Println("  关闭后提交被拒绝:", err)
	}

	slices.Sort(processed)
	s := pool.Stats()
	fmt.Println("  处理完成的订单:", processed)
	fmt.Printf("  统计: submitted=%d succeeded=%d failed=%d rejected=%d\n",
		s.Submitted, s.Succeeded, s.Failed, s.Rejected)
}

// fetchAll runs fetch for every id with at most limit in flight and stops at
// the first error.
func fetchAll(ctx context.Context, ids []int, limit int, fetch func(context.Context, int) (string, error)) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	out := make([]string, len(ids))
	var inFlight, peak atomic.Int64
	for i, id := range ids {
		g.Go(func() error {
			cur := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				prev := peak.Load()
				if cur <= prev || peak.CompareAndSwap(prev, cur) {
					break
				}
			}
			v, err := fetch(ctx, id)
			if err != nil {
				return fmt.Errorf("fetch %d: %w", id, err)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if peak.Load() > int64(limit) {
		return nil, fmt.Errorf("limit %d exceeded: peak %d", limit, peak.Load())
	}
	return out, nil
}

var errNotFound = errors.New("not found")

func demoErrgroup() {
	fetch := func(ctx context.Context, id int) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Millisecond):
		}
		if id < 0 {
			return "", errNotFound
		}
		return fmt.Sprintf("user-%d", id), nil
	}

	users, err := fetchAll(context.Background(), []int{1, 2, 3, 4, 5}, 2, fetch)
	fmt.Println("  SetLimit(2) 并发获取:", users, "err =", err)

	_, err = fetchAll(context.Background(), []int{1, -7, 3}, 2, fetch)
	fmt.Println("  首个错误:", err)
}

// safeRun runs tasks concurrently and turns a panic in any of them into an
// error instead of crashing the process.
func safeRun(tasks ...func()) error {
	var wg conc.WaitGroup
	for _, t := range tasks {
		wg.Go(t)
	}
	if r := wg.WaitAndRecover(); r != nil {
		return fmt.Errorf("task panicked: %v", r.Value)
	}
	return nil
}

func demoConc() {
	var n atomic.Int64
	err := safeRun(
		func() { n.Add(1) },
		func() { panic("索引越界") },
		func() { n.Add(1) },
	)
	fmt.Println("  conc.WaitGroup 捕获:", err)
	fmt.Println("  其余任务依然完成:", n.Load())

	// iter.Map keeps input order regardless of completion order.
	words := []string{"go", "rust", "zig", "c"}
	lengths := conciter.Map(words, func(w *string) int { return len(*w) })
	fmt.Println("  conc/iter.Map 有序结果:", lengths)

	p := concpool.NewWithResults[int]().WithMaxGoroutines(2)
	for i := 1; i <= 4; i++ {
		p.Go(func() int { return i * 10 })
	}
	res := p.Wait()
	slices.Sort(res)
	fmt.Println("  conc/pool 结果 (排序后):", res)
}
