package concurrency

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// Task is the unit of work run by a Pool. The context is cancelled when a
// shutdown runs out of time.
type Task func(ctx context.Context) error

// PoolConfig holds pool construction parameters.
type PoolConfig struct {
	// Workers is the number of goroutines consuming tasks. Defaults to 1.
	Workers int

	// QueueSize is the capacity of the task channel. 0 makes Submit block
	// until a worker is free.
	QueueSize int

	// ShutdownTimeout bounds how long Shutdown waits for queued tasks before
	// cancelling them. Defaults to 5 s.
	ShutdownTimeout time.Duration

	// Logger receives worker lifecycle records. If nil, output is discarded
	// so the tutorial transcript stays clean.
	Logger *log.Logger
}

func (c *PoolConfig) withDefaults() PoolConfig {
	out := *c
	if out.Workers <= 0 {
		out.Workers = 1
	}
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = 5 * time.Second
	}
	if out.Logger == nil {
		out.Logger = log.New(io.Discard)
	}
	return out
}

// PoolStats is a snapshot of the pool counters.
type PoolStats struct {
	Submitted int64
	Started   int64
	Succeeded int64
	Failed    int64
	Rejected  int64
}

// Pool is a fixed-size worker pool.
//
//	p := NewPool(cfg)
//	p.Submit(ctx, task)
//	p.Shutdown() // stop accepting, drain, cancel stragglers
type Pool struct {
	cfg   PoolConfig
	tasks chan Task
	wg    sync.WaitGroup

	submitted, started, succeeded, failed, rejected atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc

	closed atomic.Bool
	once   sync.Once
}

// Pool errors.
var (
	ErrPoolClosed      = errors.New("pool is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; tasks were cancelled")
)

// NewPool starts cfg.Workers goroutines that run until Shutdown.
func NewPool(cfg PoolConfig) *Pool {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		cfg:    cfg,
		tasks:  make(chan Task, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	p.cfg.Logger.Debug("pool starting", "workers", cfg.Workers, "queue", cfg.QueueSize)

	for i := range cfg.Workers {
		p.wg.Add(1)
		go p.work(i)
	}
	return p
}

// Submit enqueues a task, blocking while the queue is full. It fails with
// ErrPoolClosed after Shutdown and with the caller's context error if ctx
// ends first.
func (p *Pool) Submit(ctx context.Context, t Task) error {
	if p.closed.Load() {
		p.rejected.Add(1)
		return ErrPoolClosed
	}
	p.submitted.Add(1)

	select {
	case p.tasks <- t:
		return nil
	case <-ctx.Done():
		p.rejected.Add(1)
		return fmt.Errorf("submit: %w", ctx.Err())
	}
}

// Shutdown stops accepting tasks, lets workers drain the queue and waits up
// to ShutdownTimeout. On timeout the workers' context is cancelled and
// ErrShutdownTimeout is returned. Later calls are no-ops.
func (p *Pool) Shutdown() error {
	var err error
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.cfg.Logger.Debug("pool drained")
		case <-time.After(p.cfg.ShutdownTimeout):
			p.cfg.Logger.Warn("shutdown timeout, cancelling tasks", "timeout", p.cfg.ShutdownTimeout)
			p.cancel()
			<-done
			err = ErrShutdownTimeout
		}
		p.cancel()
	})
	return err
}

// Stats returns the current counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Submitted: p.submitted.Load(),
		Started:   p.started.Load(),
		Succeeded: p.succeeded.Load(),
		Failed:    p.failed.Load(),
		Rejected:  p.rejected.Load(),
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	logger := p.cfg.Logger.With("worker", id)

	for t := range p.tasks {
		if p.ctx.Err() != nil {
			p.failed.Add(1)
			continue
		}
		p.started.Add(1)
		if err := t(p.ctx); err != nil {
			p.failed.Add(1)
			logger.Debug("task failed", "err", err)
			continue
		}
		p.succeeded.Add(1)
	}
	logger.Debug("worker exited")
}
