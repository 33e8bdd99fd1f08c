package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrPoolClosed is returned by Do after Shutdown.
var ErrPoolClosed = errors.New("worker pool closed")

type job struct {
	ctx  context.Context
	fn   func(context.Context) error
	done chan error
}

// Pool runs submitted functions on a fixed set of worker goroutines. The
// dispatcher routes every storage call through a Pool so a slow storage
// operation occupies a worker, not the caller-facing concurrency domain.
type Pool struct {
	jobs chan job
	quit chan struct{}

	once sync.Once
	wg   sync.WaitGroup
}

// NewPool starts size workers. Size values below one fall back to one.
func NewPool(size int) *Pool {
	if size < 1 {
		size = 1
	}
	p := &Pool{
		jobs: make(chan job),
		quit: make(chan struct{}),
	}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

// Do submits fn and waits for its result. If ctx ends before a worker picks
// the job up, Do returns the context error and fn never runs; once running,
// fn is not cancellable from outside and runs to completion.
func (p *Pool) Do(ctx context.Context, fn func(context.Context) error) error {
	j := job{ctx: ctx, fn: fn, done: make(chan error, 1)}

	select {
	case p.jobs <- j:
	case <-p.quit:
		return ErrPoolClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	return <-j.done
}

// Shutdown stops accepting work and waits for in-flight jobs to finish.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case j := <-p.jobs:
			j.done <- j.fn(j.ctx)
		case <-p.quit:
			return
		}
	}
}
