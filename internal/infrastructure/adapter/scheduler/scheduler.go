package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// Job is a housekeeping task run on a fixed interval
type Job interface {
	Name() string
	Interval() time.Duration
	Execute(ctx context.Context)
}

// Scheduler runs housekeeping jobs. Jobs never overlap with themselves.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    coreport.Logger
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewScheduler creates a stopped scheduler
func NewScheduler(logger coreport.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		scheduler: s,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
	}, nil
}

// Register adds a job. A job with a non-positive interval is skipped.
func (s *Scheduler) Register(job Job) error {
	if job.Interval() <= 0 {
		s.logger.Info("Scheduled job disabled", map[string]any{"job": job.Name()})
		return nil
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(job.Interval()),
		gocron.NewTask(func() { job.Execute(s.ctx) }),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to register job %s: %w", job.Name(), err)
	}

	s.logger.Info("Scheduled job registered", map[string]any{
		"job":      job.Name(),
		"interval": job.Interval().String(),
	})
	return nil
}

// Start starts running registered jobs
func (s *Scheduler) Start() {
	s.scheduler.Start()
	s.logger.Info("Scheduler started", map[string]any{"jobs": len(s.scheduler.Jobs())})
}

// Stop cancels running jobs and waits for them to return
func (s *Scheduler) Stop() error {
	s.cancel()
	if err := s.scheduler.Shutdown(); err != nil {
		s.logger.Error("Failed to shutdown scheduler", map[string]any{"error": err.Error()})
		return err
	}
	s.logger.Info("Scheduler stopped", nil)
	return nil
}
