package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/singleflight"
)

func TestFutureAwait(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	fut := Spawn(context.Background(), func(context.Context) (int, error) {
		<-release
		return 7, nil
	})
	assert.False(t, fut.Ready())
	close(release)

	v, err := fut.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.True(t, fut.Ready())
}

func TestFutureAwaitHonoursContext(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	defer close(block)
	fut := Spawn(context.Background(), func(context.Context) (int, error) {
		<-block
		return 0, nil
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := fut.Await(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestJoinAll(t *testing.T) {
	t.Parallel()

	got, err := JoinAll(context.Background(), user(3), user(1), user(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"user-3", "user-1", "user-2"}, got)

	_, err = JoinAll(context.Background(), user(1), user(-1))
	assert.ErrorContains(t, err, "user -1: invalid id")
}

func TestJoinAllCancelsSiblings(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := JoinAll(context.Background(),
		func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
		func(context.Context) (int, error) { return 0, boom },
	)
	assert.ErrorIs(t, err, boom)
}

func TestRace(t *testing.T) {
	t.Parallel()

	v, err := Race(context.Background(), user(50), user(1))
	require.NoError(t, err)
	assert.Equal(t, "user-1", v)

	fail := func(context.Context) (string, error) { return "", errors.New("down") }
	_, err = Race(context.Background(), fail, fail)
	assert.ErrorIs(t, err, ErrNoWinner)
	assert.ErrorContains(t, err, "down")
}

func TestStreamAndThrottle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var got []int
	for v := range Throttle(ctx, Stream(ctx, counter(4)), time.Millisecond) {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestStreamStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	s := Stream(ctx, counter(1<<30))
	<-s
	cancel()
	for range s {
	}
}

func TestRetry(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), 4, time.Millisecond, func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("flaky")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)

	err = Retry(context.Background(), 2, time.Millisecond, func(context.Context) error { return errors.New("down") })
	assert.EqualError(t, err, "after 2 attempts: down")
}

func TestRetryStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Retry(ctx, 3, time.Hour, func(context.Context) error { return errors.New("x") })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBoundedMap(t *testing.T) {
	t.Parallel()

	out, peak, err := boundedMap(context.Background(), []int{1, 2, 3, 4, 5}, 2, func(x int) int {
		time.Sleep(time.Millisecond)
		return x * 10
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, out)
	assert.LessOrEqual(t, peak, int64(2))
}

func TestLoadSharedDeduplicates(t *testing.T) {
	t.Parallel()

	var g singleflight.Group
	var loads atomic.Int32
	vals, err := loadShared(context.Background(), &g, "k", 4, func() (string, error) {
		loads.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "v", nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"v", "v", "v", "v"}, vals)
	assert.Less(t, loads.Load(), int32(4))
}
