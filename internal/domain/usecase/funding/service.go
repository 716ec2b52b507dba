package funding

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/usecase"
)

// Operation names used in logs and metrics
const (
	OpContribute    = "contribute"
	OpWithdraw      = "withdraw"
	OpRequestRefund = "request_refund"
	OpProcessRefund = "process_refund"
)

// Refund outcomes
const (
	RefundApproved        = "approved"
	RefundRejected        = "rejected"
	RefundAlreadyApproved = "already_approved"
)

// Config tunes the engine's queues and conflict retries
type Config struct {
	QueueBuffer        int
	QueueIdleTimeout   time.Duration
	MaxConflictRetries int
	RetryBackoff       time.Duration
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		QueueBuffer:        64,
		QueueIdleTimeout:   time.Minute,
		MaxConflictRetries: 3,
		RetryBackoff:       20 * time.Millisecond,
	}
}

// Service is the funding engine. It is the only writer of a project's raised
// amount, its withdrawn flag and the approval flag of refund requests.
type Service struct {
	uow          persistence.UnitOfWork
	queue        *ProjectQueue
	metrics      coreport.Metrics
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	config       Config
}

var _ usecase.FundingUseCase = (*Service)(nil)

// NewService creates a new funding engine
func NewService(
	uow persistence.UnitOfWork,
	metrics coreport.Metrics,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	config Config,
) *Service {
	return &Service{
		uow:          uow,
		queue:        NewProjectQueue(logger, config.QueueBuffer, config.QueueIdleTimeout),
		metrics:      metrics,
		logger:       logger,
		timeProvider: timeProvider,
		config:       config,
	}
}

// Shutdown stops the per-project workers
func (s *Service) Shutdown() {
	s.queue.Shutdown()
}

// CanWithdraw reports whether the project's creator may withdraw now
func (s *Service) CanWithdraw(project *entity.Project) bool {
	return project.CanWithdraw(s.timeProvider.Now())
}

// NeedsRefund reports whether the project expired underfunded while holding money
func (s *Service) NeedsRefund(project *entity.Project) bool {
	return project.NeedsRefund(s.timeProvider.Now())
}

// Status derives the project's lifecycle state now
func (s *Service) Status(project *entity.Project) entity.ProjectStatus {
	return project.State(s.timeProvider.Now())
}

// serialized runs fn on the project's queue inside a store transaction.
// A lost serialization race rolls everything back and fn runs again from a
// fresh read, at most MaxConflictRetries more times.
func (s *Service) serialized(ctx context.Context, operation string, projectID uint64, fn func(txCtx context.Context) error) error {
	return s.queue.Do(ctx, projectID, func(ctx context.Context) error {
		var err error
		for attempt := 0; ; attempt++ {
			err = s.inTransaction(ctx, fn)
			if err == nil || !errors.Is(err, errs.ErrConcurrentUpdate) || attempt >= s.config.MaxConflictRetries {
				return err
			}

			s.metrics.ConflictRetried(operation)
			s.logger.Warn("Concurrent update detected, retrying operation", map[string]any{
				"operation":  operation,
				"project_id": projectID,
				"attempt":    attempt + 1,
			})
			backoff := coreport.Duration(s.config.RetryBackoff * time.Duration(attempt+1))
			if sleepErr := s.timeProvider.Sleep(ctx, backoff); sleepErr != nil {
				return sleepErr
			}
		}
	})
}

func (s *Service) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = s.uow.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to rollback transaction", map[string]any{"error": rbErr.Error()})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}

// fail records a rejected operation and returns err unchanged
func (s *Service) fail(operation string, err error, fields map[string]any) error {
	kind := errorKind(err)
	s.metrics.OperationFailed(operation, kind)

	logFields := map[string]any{"operation": operation, "kind": kind, "error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	for k, v := range errs.LogFieldsOf(err) {
		logFields[k] = v
	}

	if kind == "internal" {
		s.logger.Error("Funding operation failed", logFields)
	} else {
		s.logger.Warn("Funding operation rejected", logFields)
	}
	return err
}

func errorKind(err error) string {
	switch {
	case errs.IsValidationError(err):
		return "validation"
	case errs.IsNotFoundError(err):
		return "not_found"
	case errs.IsForbiddenError(err):
		return "forbidden"
	case errs.IsStateConflictError(err):
		return "state_conflict"
	case errs.IsUnauthorizedError(err):
		return "unauthorized"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}

func stateError(project *entity.Project, operation string, err error) error {
	return errs.NewProjectStateError(
		project.ID,
		operation,
		entity.FormatAmount(project.CurrentAmount),
		entity.FormatAmount(project.GoalAmount),
		entity.FormatDeadline(project.Deadline),
		err,
	)
}
