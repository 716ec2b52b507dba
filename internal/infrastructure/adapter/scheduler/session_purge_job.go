package scheduler

import (
	"context"
	"time"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// SessionPurger deletes expired login sessions
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// SessionPurgeJob removes expired session rows. It never touches funding state.
type SessionPurgeJob struct {
	purger   SessionPurger
	interval time.Duration
	timeout  time.Duration
	logger   coreport.Logger
}

// NewSessionPurgeJob creates the job. Each run is bounded by timeout.
func NewSessionPurgeJob(purger SessionPurger, interval, timeout time.Duration, logger coreport.Logger) *SessionPurgeJob {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SessionPurgeJob{
		purger:   purger,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

func (j *SessionPurgeJob) Name() string {
	return "session_purge"
}

func (j *SessionPurgeJob) Interval() time.Duration {
	return j.interval
}

func (j *SessionPurgeJob) Execute(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	removed, err := j.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		j.logger.Error("Session purge failed", map[string]any{
			"job":   j.Name(),
			"error": err.Error(),
		})
		return
	}
	j.logger.Debug("Session purge finished", map[string]any{
		"job":     j.Name(),
		"removed": removed,
	})
}
