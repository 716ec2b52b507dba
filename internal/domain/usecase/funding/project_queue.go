package funding

import (
	"context"
	"sync"
	"time"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// ProjectQueue runs the operations of one project strictly one at a time.
// Each project gets a buffered queue and a worker goroutine; a worker exits
// after idling for idleTimeout and is recreated on the next operation.
type ProjectQueue struct {
	logger      coreport.Logger
	buffer      int
	idleTimeout time.Duration

	mu      sync.Mutex
	workers map[uint64]*projectWorker
	closed  bool
	stop    chan struct{}
	wg      sync.WaitGroup
}

type projectWorker struct {
	jobs    chan *queuedOperation
	done    chan struct{}
	pending int // guarded by ProjectQueue.mu
}

// queuedOperation represents a queued engine operation
type queuedOperation struct {
	ctx     context.Context
	run     func(ctx context.Context) error
	started chan struct{} // closed once run has been called
	result  chan error
}

// NewProjectQueue creates a new project queue
func NewProjectQueue(logger coreport.Logger, buffer int, idleTimeout time.Duration) *ProjectQueue {
	if buffer <= 0 {
		buffer = 1
	}
	if idleTimeout <= 0 {
		idleTimeout = time.Minute
	}
	return &ProjectQueue{
		logger:      logger,
		buffer:      buffer,
		idleTimeout: idleTimeout,
		workers:     make(map[uint64]*projectWorker),
		stop:        make(chan struct{}),
	}
}

// Do queues run behind every earlier operation on projectID and waits for its result.
// Returns ErrUnavailable after Shutdown, or ctx.Err() when the caller gives up
// before run starts. Once run has started its result is always returned.
func (q *ProjectQueue) Do(ctx context.Context, projectID uint64, run func(ctx context.Context) error) error {
	worker, err := q.acquire(projectID)
	if err != nil {
		return err
	}

	op := &queuedOperation{ctx: ctx, run: run, started: make(chan struct{}), result: make(chan error, 1)}

	select {
	case worker.jobs <- op:
	case <-q.stop:
		q.release(worker)
		return errs.ErrUnavailable
	case <-ctx.Done():
		q.release(worker)
		q.logger.Warn("Context canceled while enqueueing operation", map[string]any{
			"project_id": projectID,
			"error":      ctx.Err().Error(),
		})
		return ctx.Err()
	}

	select {
	case err := <-op.result:
		return err
	case <-worker.done:
		select {
		case err := <-op.result:
			return err
		default:
			return errs.ErrUnavailable
		}
	case <-ctx.Done():
		select {
		case <-op.started:
			// run has started and may already have committed
			return <-op.result
		default:
		}
		q.logger.Warn("Context canceled while waiting for operation result", map[string]any{
			"project_id": projectID,
			"error":      ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

// acquire returns the project's worker, starting one if needed, and counts one pending operation
func (q *ProjectQueue) acquire(projectID uint64) (*projectWorker, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, errs.ErrUnavailable
	}

	worker, ok := q.workers[projectID]
	if !ok {
		worker = &projectWorker{
			jobs: make(chan *queuedOperation, q.buffer),
			done: make(chan struct{}),
		}
		q.workers[projectID] = worker
		q.wg.Add(1)
		go q.work(projectID, worker)
		q.logger.Debug("Started project queue worker", map[string]any{"project_id": projectID})
	}
	worker.pending++
	return worker, nil
}

func (q *ProjectQueue) release(worker *projectWorker) {
	q.mu.Lock()
	worker.pending--
	q.mu.Unlock()
}

func (q *ProjectQueue) work(projectID uint64, worker *projectWorker) {
	defer q.wg.Done()
	defer close(worker.done)

	idle := time.NewTimer(q.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case op := <-worker.jobs:
			q.execute(op)
			q.release(worker)
			idle.Reset(q.idleTimeout)

		case <-idle.C:
			q.mu.Lock()
			if worker.pending == 0 {
				delete(q.workers, projectID)
				q.mu.Unlock()
				q.logger.Debug("Stopped idle project queue worker", map[string]any{"project_id": projectID})
				return
			}
			q.mu.Unlock()
			idle.Reset(q.idleTimeout)

		case <-q.stop:
			q.drain(worker)
			return
		}
	}
}

func (q *ProjectQueue) execute(op *queuedOperation) {
	if err := op.ctx.Err(); err != nil {
		op.result <- err
		return
	}
	close(op.started)
	op.result <- op.run(op.ctx)
}

// drain answers every operation still buffered with ErrUnavailable
func (q *ProjectQueue) drain(worker *projectWorker) {
	for {
		select {
		case op := <-worker.jobs:
			op.result <- errs.ErrUnavailable
			q.release(worker)
		default:
			return
		}
	}
}

// Workers returns the number of live project workers
func (q *ProjectQueue) Workers() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.workers)
}

// Shutdown rejects new operations and waits for all workers to exit.
// The operation each worker is running completes first.
func (q *ProjectQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.stop)
	q.mu.Unlock()

	q.logger.Info("Shutting down project queues", nil)
	q.wg.Wait()
	q.logger.Info("Project queues shut down", nil)
}
