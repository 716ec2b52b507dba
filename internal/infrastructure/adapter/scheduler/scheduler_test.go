package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/crowdfund-ledger/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/crowdfund-ledger/mocks/port/usecase"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeExpiredSessions(context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, nil
}

func TestScheduler_RunsRegisteredJobs(t *testing.T) {
	s, err := NewScheduler(logger.NewNoopLogger())
	require.NoError(t, err)

	purger := &countingPurger{}
	require.NoError(t, s.Register(NewSessionPurgeJob(purger, 20*time.Millisecond, time.Second, logger.NewNoopLogger())))

	s.Start()
	assert.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Stop())
}

func TestScheduler_SkipsDisabledJobs(t *testing.T) {
	s, err := NewScheduler(logger.NewNoopLogger())
	require.NoError(t, err)

	purger := &countingPurger{}
	require.NoError(t, s.Register(NewSessionPurgeJob(purger, 0, time.Second, logger.NewNoopLogger())))

	s.Start()
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.Stop())
	assert.Zero(t, purger.calls.Load())
}

func TestSessionPurgeJob_Execute(t *testing.T) {
	t.Run("logs the removed count", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		log := coremocks.NewMockLogger(t)
		users.EXPECT().PurgeExpiredSessions(mock.Anything).Return(int64(4), nil).Once()
		log.EXPECT().Debug("Session purge finished", mock.MatchedBy(func(f map[string]any) bool {
			return f["removed"] == int64(4)
		})).Once()

		NewSessionPurgeJob(users, time.Minute, time.Second, log).Execute(context.Background())
	})

	t.Run("logs failures", func(t *testing.T) {
		users := usecasemocks.NewMockUserUseCase(t)
		log := coremocks.NewMockLogger(t)
		users.EXPECT().PurgeExpiredSessions(mock.Anything).Return(int64(0), errors.New("db down")).Once()
		log.EXPECT().Error("Session purge failed", mock.Anything).Once()

		NewSessionPurgeJob(users, time.Minute, time.Second, log).Execute(context.Background())
	})
}
