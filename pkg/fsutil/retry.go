package fsutil

import (
	"time"

	"github.com/bstardust/mediafs/internal/logger"
)

const scope = "fsutil"

// RetryConfig defines retry behavior for filesystem calls
type RetryConfig struct {
	// Attempts is the total number of attempts, including the first
	Attempts int

	// Delay is the fixed wait between attempts
	Delay time.Duration
}

// DefaultRetryConfig returns the default retry configuration
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts: 3,
		Delay:    1 * time.Second,
	}
}

// retryValue runs fn up to rc.Attempts times, sleeping rc.Delay between
// attempts. Every failure is retried identically regardless of cause.
// Failed attempts and any success that was not first-attempt are logged
// at debug level. On exhaustion the last error is returned.
func retryValue[T any](op string, rc RetryConfig, fn func() (T, error)) (T, error) {
	attempts := rc.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var zero T
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		var result T
		result, err = fn()
		if err == nil {
			if attempt > 1 {
				logger.Debug(scope, "success on attempt %d/%d for %s", attempt, attempts, op)
			}
			return result, nil
		}

		logger.Debug(scope, "error on attempt %d/%d for %s: %v", attempt, attempts, op, err)
		if attempt < attempts {
			time.Sleep(rc.Delay)
		}
	}
	return zero, err
}

// retryDo is retryValue for operations without a result
func retryDo(op string, rc RetryConfig, fn func() error) error {
	_, err := retryValue(op, rc, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
