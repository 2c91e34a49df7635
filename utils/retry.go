package utils

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

// RetryWithBackoff runs fn up to attempts times, sleeping attempt² seconds
// between tries. attempts <= 1 means a single try with no retry.
func RetryWithBackoff(ctx context.Context, attempts int, fn func() error, logger *Logger) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * time.Second
			logger.Warn("Retrying (attempt %d/%d) after %v...", attempt+1, attempts, backoff)
			select {
			case <-ctx.Done():
				return errors.CombineErrors(lastErr, ctx.Err())
			case <-time.After(backoff):
			}
		}
		if err := fn(); err != nil {
			lastErr = err
			logger.Debug("Attempt %d failed: %v", attempt+1, err)
			continue
		}
		return nil
	}
	if attempts == 1 {
		return lastErr
	}
	return errors.Wrapf(lastErr, "all %d attempts failed", attempts)
}
