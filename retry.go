package client

import (
	"context"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/Ralchuu/personaltrainer-client/internal/httperr"
)

// withRetry runs fn, retrying recoverable failures with exponential
// backoff up to the configured attempt count. Irrecoverable errors
// (4xx other than 408/429, content-type misconfiguration) fail fast.
func (c *Client) withRetry(ctx context.Context, operation string, fn func() error) error {
	if c.retryAttempts <= 1 {
		return fn()
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 5 * time.Second

	bo := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(c.retryAttempts-1)), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := fn()
		if err == nil {
			return nil
		}
		if httperr.IsIrrecoverable(err) {
			return backoff.Permanent(err)
		}
		c.log.Debug().Err(err).Str("operation", operation).Int("attempt", attempt).Msg("retrying recoverable failure")
		return err
	}, bo)
}
