package provider

import (
	"context"
	"time"

	"salescoach-api/internal/common/config"
	commonerrors "salescoach-api/internal/common/errors"
)

// callWithRetry runs fn and reissues it on retryable failures up to the
// configured limit, with exponential backoff. The default policy is zero
// retries: one proxy request maps to exactly one vendor call.
func callWithRetry(ctx context.Context, retry config.RetryConfig, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt <= retry.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := config.GetDuration(retry.InitialBackoff) * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return lastErr
			}
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !commonerrors.IsRetryable(lastErr) {
			return lastErr
		}
		if ctx.Err() != nil {
			return lastErr
		}
	}

	return lastErr
}
