package funding

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/logger"
)

func TestProjectQueue_SerializesPerProject(t *testing.T) {
	q := NewProjectQueue(logger.NewNoopLogger(), 8, time.Second)
	defer q.Shutdown()

	var running, maxRunning atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := q.Do(context.Background(), 1, func(context.Context) error {
				n := running.Add(1)
				for {
					m := maxRunning.Load()
					if n <= m || maxRunning.CompareAndSwap(m, n) {
						break
					}
				}
				time.Sleep(100 * time.Microsecond)
				running.Add(-1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxRunning.Load())
}

func TestProjectQueue_KeepsOrder(t *testing.T) {
	q := NewProjectQueue(logger.NewNoopLogger(), 16, time.Second)
	defer q.Shutdown()

	release := make(chan struct{})
	var order []int
	var mu sync.Mutex

	// hold the worker so later operations queue up in submission order
	blocked := make(chan struct{})
	go func() {
		_ = q.Do(context.Background(), 1, func(context.Context) error {
			close(blocked)
			<-release
			return nil
		})
	}()
	<-blocked

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = q.Do(context.Background(), 1, func(context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		// let each submission land before the next
		require.Eventually(t, func() bool {
			q.mu.Lock()
			defer q.mu.Unlock()
			return len(q.workers[1].jobs) == i+1
		}, time.Second, time.Millisecond)
	}
	close(release)
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestProjectQueue_EvictsIdleWorkers(t *testing.T) {
	q := NewProjectQueue(logger.NewNoopLogger(), 1, 20*time.Millisecond)
	defer q.Shutdown()

	require.NoError(t, q.Do(context.Background(), 1, func(context.Context) error { return nil }))
	require.NoError(t, q.Do(context.Background(), 2, func(context.Context) error { return nil }))
	assert.Equal(t, 2, q.Workers())

	assert.Eventually(t, func() bool { return q.Workers() == 0 }, time.Second, 5*time.Millisecond)

	// a new operation restarts the worker
	require.NoError(t, q.Do(context.Background(), 1, func(context.Context) error { return nil }))
}

func TestProjectQueue_ShutdownRejectsNewWork(t *testing.T) {
	q := NewProjectQueue(logger.NewNoopLogger(), 1, time.Second)
	require.NoError(t, q.Do(context.Background(), 1, func(context.Context) error { return nil }))

	q.Shutdown()
	q.Shutdown()

	err := q.Do(context.Background(), 1, func(context.Context) error { return nil })
	assert.ErrorIs(t, err, errs.ErrUnavailable)
}

func TestProjectQueue_CanceledContext(t *testing.T) {
	q := NewProjectQueue(logger.NewNoopLogger(), 1, time.Second)
	defer q.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	err := q.Do(ctx, 1, func(context.Context) error { ran = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestProjectQueue_StartedOperationReportsItsOwnResult(t *testing.T) {
	q := NewProjectQueue(logger.NewNoopLogger(), 1, time.Second)
	defer q.Shutdown()

	for i := 0; i < 100; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		err := q.Do(ctx, 1, func(context.Context) error {
			// the caller gives up while the write is committing
			cancel()
			time.Sleep(time.Millisecond)
			return nil
		})
		require.NoError(t, err, "iteration %d", i)
	}
}
