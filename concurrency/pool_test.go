package concurrency

import (
	"context"
	"errors"
	"io"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quietLogger discards pool records unless -v is set.
func quietLogger() *log.Logger {
	if testing.Verbose() {
		return log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel, Prefix: "pool"})
	}
	return log.New(io.Discard)
}

// ── Concurrency limit ────────────────────────────────────────────────────────

func TestPoolConcurrencyLimit(t *testing.T) {
	t.Parallel()

	const workers = 3
	const tasks = 20

	pool := NewPool(PoolConfig{Workers: workers, QueueSize: tasks, ShutdownTimeout: 5 * time.Second, Logger: quietLogger()})

	var active, peak atomic.Int64
	release := make(chan struct{})

	for range tasks {
		require.NoError(t, pool.Submit(context.Background(), func(ctx context.Context) error {
			cur := active.Add(1)
			for {
				prev := peak.Load()
				if cur <= prev || peak.CompareAndSwap(prev, cur) {
					break
				}
			}
			<-release
			active.Add(-1)
			return nil
		}))
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	require.NoError(t, pool.Shutdown())

	assert.LessOrEqual(t, peak.Load(), int64(workers))
	assert.Positive(t, peak.Load())
}

// ── Drain and stats ──────────────────────────────────────────────────────────

func TestPoolDrainsAndCounts(t *testing.T) {
	t.Parallel()

	pool := NewPool(PoolConfig{Workers: 4, QueueSize: 10, Logger: quietLogger()})
	boom := errors.New("boom")

	for i := range 10 {
		require.NoError(t, pool.Submit(context.Background(), func(context.Context) error {
			if i%5 == 0 {
				return boom
			}
			return nil
		}))
	}
	require.NoError(t, pool.Shutdown())

	assert.Equal(t, PoolStats{Submitted: 10, Started: 10, Succeeded: 8, Failed: 2}, pool.Stats())
}

// ── Shutdown ─────────────────────────────────────────────────────────────────

func TestPoolShutdownTimeoutCancels(t *testing.T) {
	t.Parallel()

	pool := NewPool(PoolConfig{Workers: 2, QueueSize: 2, ShutdownTimeout: 30 * time.Millisecond, Logger: quietLogger()})

	var cancelled atomic.Int64
	for range 2 {
		require.NoError(t, pool.Submit(context.Background(), func(ctx context.Context) error {
			<-ctx.Done()
			cancelled.Add(1)
			return ctx.Err()
		}))
	}

	assert.ErrorIs(t, pool.Shutdown(), ErrShutdownTimeout)
	assert.Equal(t, int64(2), cancelled.Load())
}

func TestPoolSubmitAfterShutdown(t *testing.T) {
	t.Parallel()

	pool := NewPool(PoolConfig{Logger: quietLogger()})
	require.NoError(t, pool.Shutdown())
	require.NoError(t, pool.Shutdown(), "second Shutdown is a no-op")

	err := pool.Submit(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
	assert.Equal(t, int64(1), pool.Stats().Rejected)
}

func TestPoolSubmitRespectsCallerContext(t *testing.T) {
	t.Parallel()

	pool := NewPool(PoolConfig{Workers: 1, QueueSize: 0, Logger: quietLogger()})
	blocker := make(chan struct{})
	require.NoError(t, pool.Submit(context.Background(), func(context.Context) error {
		<-blocker
		return nil
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := pool.Submit(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(blocker)
	require.NoError(t, pool.Shutdown())
}
