package database

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	errs "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
)

// RetryConfig holds configuration for retry operations
type RetryConfig struct {
	MaxAttempts   int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // 0.0-1.0
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// IsTransientError reports whether err is worth retrying: lost serialization
// races and dropped connections. Validation and state errors never are.
func IsTransientError(err error) bool {
	return errors.Is(err, errs.ErrConcurrentUpdate) || errors.Is(err, errs.ErrDatabaseConnection)
}

// Retry runs operation until it succeeds, returns a non-retryable error, or
// MaxAttempts is reached. Waits go through the time provider.
func Retry(
	ctx context.Context,
	config RetryConfig,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	retryable func(error) bool,
	operation func(attempt int) error,
) error {
	attempts := max(config.MaxAttempts, 1)
	var err error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := Backoff(attempt-1, config)
			logger.Warn("Retrying database operation", map[string]any{
				"attempt":     attempt + 1,
				"max_retries": attempts,
				"error":       err.Error(),
				"retry_after": backoff.String(),
			})
			if sleepErr := timeProvider.Sleep(ctx, coreport.Duration(backoff)); sleepErr != nil {
				logger.Warn("Retry operation canceled by context", map[string]any{
					"attempts": attempt,
					"error":    sleepErr.Error(),
				})
				return sleepErr
			}
		}

		err = operation(attempt)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": attempts,
		"error":    err.Error(),
	})
	return err
}

// Backoff computes RetryInterval * 2^attempt capped at MaxInterval, plus jitter
func Backoff(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval << uint(min(attempt, 30))
	if backoff <= 0 || (config.MaxInterval > 0 && backoff > config.MaxInterval) {
		backoff = config.MaxInterval
	}

	if config.JitterFactor > 0 {
		backoff += time.Duration(float64(backoff) * config.JitterFactor * rand.Float64())
	}
	return backoff
}
