package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsSubmittedWork(t *testing.T) {
	pool := NewPool(2)
	defer pool.Shutdown()

	var ran atomic.Bool
	err := pool.Do(context.Background(), func(context.Context) error {
		ran.Store(true)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran.Load())
}

func TestPoolPropagatesErrors(t *testing.T) {
	pool := NewPool(1)
	defer pool.Shutdown()

	boom := errors.New("boom")
	err := pool.Do(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestPoolHonorsContextBeforePickup(t *testing.T) {
	pool := NewPool(1)
	defer pool.Shutdown()

	// Occupy the only worker.
	release := make(chan struct{})
	started := make(chan struct{})
	go func() {
		_ = pool.Do(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.Do(ctx, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	const size = 3
	pool := NewPool(size)
	defer pool.Shutdown()

	var running, peak int32
	var wg sync.WaitGroup
	gate := make(chan struct{})

	for i := 0; i < size*4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Do(context.Background(), func(context.Context) error {
				n := atomic.AddInt32(&running, 1)
				for {
					p := atomic.LoadInt32(&peak)
					if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
						break
					}
				}
				<-gate
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}

	close(gate)
	wg.Wait()
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(size))
}

func TestPoolShutdownRejectsNewWork(t *testing.T) {
	pool := NewPool(1)
	pool.Shutdown()

	err := pool.Do(context.Background(), func(context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)

	// Shutdown is idempotent.
	pool.Shutdown()
}
