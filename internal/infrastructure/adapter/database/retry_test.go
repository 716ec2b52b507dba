package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/crowdfund-ledger/internal/infrastructure/adapter/time"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, RetryInterval: 10 * time.Millisecond, MaxInterval: 40 * time.Millisecond}

	tests := []struct {
		name      string
		failures  []error
		wantCalls int
		wantErr   error
	}{
		{name: "succeeds first time", wantCalls: 1},
		{name: "retries transient error", failures: []error{errs.ErrConcurrentUpdate}, wantCalls: 2},
		{
			name:      "gives up after max attempts",
			failures:  []error{errs.ErrConcurrentUpdate, errs.ErrConcurrentUpdate, errs.ErrConcurrentUpdate},
			wantCalls: 3,
			wantErr:   errs.ErrConcurrentUpdate,
		},
		{name: "stops on permanent error", failures: []error{errs.ErrGoalNotMet}, wantCalls: 1, wantErr: errs.ErrGoalNotMet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := timeprovider.NewFixedTimeProvider(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
			calls := 0

			err := Retry(context.Background(), cfg, clock, logger.NewNoopLogger(), IsTransientError, func(int) error {
				calls++
				if calls <= len(tt.failures) {
					return tt.failures[calls-1]
				}
				return nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRetry_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clock := timeprovider.NewFixedTimeProvider(time.Now())
	err := Retry(ctx, DefaultRetryConfig(), clock, logger.NewNoopLogger(), IsTransientError, func(int) error {
		return errs.ErrConcurrentUpdate
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBackoff(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, Backoff(0, cfg))
	assert.Equal(t, 400*time.Millisecond, Backoff(2, cfg))
	assert.Equal(t, time.Second, Backoff(10, cfg))

	cfg.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		b := Backoff(0, cfg)
		assert.GreaterOrEqual(t, b, 100*time.Millisecond)
		assert.LessOrEqual(t, b, 150*time.Millisecond)
	}
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, IsTransientError(errs.ErrConcurrentUpdate))
	assert.True(t, IsTransientError(fmt.Errorf("%w: reset", errs.ErrDatabaseConnection)))
	assert.False(t, IsTransientError(errs.ErrInvalidAmount))
	assert.False(t, IsTransientError(errors.New("boom")))
}
