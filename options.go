package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to
// discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ralchuu/personaltrainer-client/internal/events"
	"github.com/Ralchuu/personaltrainer-client/internal/temporal"
)

// Option configures a Client during construction in New.
// Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net bounding the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Useful for tests
// and custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithTimezone sets the fixed display timezone by IANA name. Every date
// the client parses or formats is rendered in this zone.
func WithTimezone(tz string) Option {
	return func(c *Client) error {
		norm, err := temporal.New(tz)
		if err != nil {
			return err
		}
		c.norm = norm
		return nil
	}
}

// WithLogger sets the zerolog logger used for debug and bus logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithRetry enables retrying of recoverable read failures (5xx, 408,
// 429, network errors) with exponential backoff, up to attempts total
// tries. Mutations are never retried.
func WithRetry(attempts int) Option {
	return func(c *Client) error {
		if attempts < 1 {
			return fmt.Errorf("retry attempts must be >= 1")
		}
		c.retryAttempts = attempts
		return nil
	}
}

// WithBus shares an externally constructed notification bus, letting
// several clients feed the same set of views.
func WithBus(b *events.Bus) Option {
	return func(c *Client) error {
		if b == nil {
			return fmt.Errorf("bus must not be nil")
		}
		c.bus = b
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is dumped to the logger when enabled is true.
//
// Do not enable this option in production environments: dumps include
// full bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			base := c.http.Transport
			if base == nil {
				base = http.DefaultTransport
			}
			c.http.Transport = &debugTransport{base: base}
		}
		return nil
	}
}
