// Package workerpool provides a bounded goroutine pool with backpressure
// whose tasks report errors.
//
// A Pool limits the number of goroutines that can run concurrently. When all
// workers are busy and the queue is full, Submit returns ErrPoolFull
// immediately so the caller can decide to retry or reject; SubmitWait blocks
// instead.
//
//	pool := workerpool.New(ctx, 4)
//	for _, r := range ranges {
//	    r := r
//	    pool.SubmitWait(func(ctx context.Context) error { return export(ctx, r) })
//	}
//	err := pool.Shutdown() // every task error, joined
package workerpool

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/shashiranjanraj/shopadmin/pkg/logger"
)

// ErrPoolFull is returned by Submit when all workers are busy and the task
// queue is at capacity.
var ErrPoolFull = errors.New("workerpool: pool is full")

// ErrPoolClosed is returned by Submit after Shutdown has been called.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// Task is one unit of work. It receives the pool's context.
type Task func(ctx context.Context) error

// Pool is a bounded goroutine pool.
type Pool struct {
	ctx     context.Context
	tasks   chan Task
	wg      sync.WaitGroup
	once    sync.Once
	closeCh chan struct{}

	mu   sync.Mutex
	errs []error
}

// New creates a Pool with the given number of workers. Tasks run with ctx.
func New(ctx context.Context, size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		ctx: ctx,
		// Buffer equal to 2× the worker count so bursts can be absorbed.
		tasks:   make(chan Task, size*2),
		closeCh: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Submit enqueues task without blocking.
//   - Returns ErrPoolFull if the task queue is at capacity.
//   - Returns ErrPoolClosed if Shutdown has been called.
func (p *Pool) Submit(task Task) error {
	select {
	case <-p.closeCh:
		return ErrPoolClosed
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// SubmitWait is like Submit but blocks until a slot is available, the pool
// is closed, or the pool's context is done.
func (p *Pool) SubmitWait(task Task) error {
	select {
	case <-p.closeCh:
		return ErrPoolClosed
	case <-p.ctx.Done():
		return p.ctx.Err()
	case p.tasks <- task:
		return nil
	}
}

// Shutdown stops accepting new tasks, waits for queued and in-flight tasks,
// and returns their errors joined. Safe to call multiple times.
func (p *Pool) Shutdown() error {
	p.once.Do(func() {
		close(p.closeCh)
		close(p.tasks)
		p.wg.Wait()
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		if err := p.run(task); err != nil {
			p.mu.Lock()
			p.errs = append(p.errs, err)
			p.mu.Unlock()
		}
	}
}

// run executes task, turning a panic into an error so one bad task doesn't
// kill the worker goroutine.
func (p *Pool) run(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithCtx(p.ctx).Error("workerpool: task panic", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("workerpool: task panicked: %v", r)
		}
	}()
	return task(p.ctx)
}
