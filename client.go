// Package client is a Go client for the personal-trainer REST API. It
// normalizes the API's inconsistent response shapes (bare arrays vs. HAL
// envelopes, numeric ids vs. self-links, mixed date encodings) into
// uniform view models, and notifies subscribed views after mutations so
// they can re-fetch.
package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ralchuu/personaltrainer-client/internal/api"
	"github.com/Ralchuu/personaltrainer-client/internal/calendar"
	"github.com/Ralchuu/personaltrainer-client/internal/events"
	"github.com/Ralchuu/personaltrainer-client/internal/stats"
	"github.com/Ralchuu/personaltrainer-client/internal/temporal"
)

// Client core. Construct with New or NewFromEnv; the zero value is not
// usable.
type Client struct {
	baseURL string
	http    *http.Client
	bus     *events.Bus
	norm    *temporal.Normalizer
	log     zerolog.Logger

	// retryAttempts bounds recoverable-error retries on reads; 1 means
	// no retry.
	retryAttempts int
}

// New constructs a Client for the given API base URL. Additional knobs
// are provided via functional options.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          &http.Client{Timeout: 30 * time.Second},
		log:           zerolog.Nop(),
		retryAttempts: 1,
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.norm == nil {
		c.norm = temporal.MustNew(DefaultTimezone)
	}
	if c.bus == nil {
		c.bus = events.New(c.log)
	}
	return c
}

// NewFromEnv constructs a Client from PT_* environment variables (see
// Config). Explicit options are applied on top and win.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithHTTPTimeout(cfg.HTTPTimeout),
		WithTimezone(cfg.Timezone),
	}
	return New(cfg.BaseURL, append(base, opts...)...), nil
}

// BaseURL returns the configured API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Temporal returns the normalizer holding the fixed display timezone.
// Views format all dates through it rather than doing their own timezone
// math.
func (c *Client) Temporal() *Normalizer { return c.norm }

// --------------------------------------------------------------------
// Customer operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCustomers retrieves all customers.
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	err := c.withRetry(ctx, "list customers", func() error {
		var err error
		out, err = api.ListCustomers(ctx, c.http, c.baseURL)
		return err
	})
	c.observe("customers", http.MethodGet, err)
	return out, err
}

// GetCustomer retrieves a single customer by resource URL or bare id.
func (c *Client) GetCustomer(ctx context.Context, urlOrID string) (*Customer, error) {
	var out *Customer
	err := c.withRetry(ctx, "get customer", func() error {
		var err error
		out, err = api.GetCustomer(ctx, c.http, c.baseURL, urlOrID)
		return err
	})
	c.observe("customers", http.MethodGet, err)
	return out, err
}

// CreateCustomer creates a customer and notifies customer views.
func (c *Client) CreateCustomer(ctx context.Context, form CustomerForm) (*Customer, error) {
	out, err := api.CreateCustomer(ctx, c.http, c.baseURL, form)
	c.observe("customers", http.MethodPost, err)
	if err == nil {
		c.bus.Publish(events.TopicCustomersChanged)
	}
	return out, err
}

// UpdateCustomer updates the customer at the given resource URL or bare
// id and notifies customer views.
func (c *Client) UpdateCustomer(ctx context.Context, urlOrID string, form CustomerForm) (*Customer, error) {
	out, err := api.UpdateCustomer(ctx, c.http, c.baseURL, urlOrID, form)
	c.observe("customers", http.MethodPut, err)
	if err == nil {
		c.bus.Publish(events.TopicCustomersChanged)
	}
	return out, err
}

// DeleteCustomer deletes a customer by resource URL or bare id and
// notifies customer views. Resolves to no value on success.
func (c *Client) DeleteCustomer(ctx context.Context, urlOrID string) error {
	err := api.DeleteCustomer(ctx, c.http, c.baseURL, urlOrID)
	c.observe("customers", http.MethodDelete, err)
	if err == nil {
		c.bus.Publish(events.TopicCustomersChanged)
	}
	return err
}

// --------------------------------------------------------------------
// Training operations - delegated to internal/api
// --------------------------------------------------------------------

// ListTrainings retrieves all trainings with the customer field as an
// opaque reference.
func (c *Client) ListTrainings(ctx context.Context) ([]Training, error) {
	var out []Training
	err := c.withRetry(ctx, "list trainings", func() error {
		var err error
		out, err = api.ListTrainings(ctx, c.http, c.baseURL)
		return err
	})
	c.observe("trainings", http.MethodGet, err)
	return out, err
}

// ListTrainingsWithCustomer retrieves all trainings with the customer
// embedded as a full object.
func (c *Client) ListTrainingsWithCustomer(ctx context.Context) ([]Training, error) {
	var out []Training
	err := c.withRetry(ctx, "list trainings with customer", func() error {
		var err error
		out, err = api.ListTrainingsWithCustomer(ctx, c.http, c.baseURL)
		return err
	})
	c.observe("gettrainings", http.MethodGet, err)
	return out, err
}

// CreateTraining creates a training and notifies training views.
func (c *Client) CreateTraining(ctx context.Context, form TrainingForm) (*Training, error) {
	out, err := api.CreateTraining(ctx, c.http, c.baseURL, form)
	c.observe("trainings", http.MethodPost, err)
	if err == nil {
		c.bus.Publish(events.TopicTrainingsChanged)
	}
	return out, err
}

// DeleteTraining deletes a training by resource URL or bare id and
// notifies training views.
func (c *Client) DeleteTraining(ctx context.Context, urlOrID string) error {
	err := api.DeleteTraining(ctx, c.http, c.baseURL, urlOrID)
	c.observe("trainings", http.MethodDelete, err)
	if err == nil {
		c.bus.Publish(events.TopicTrainingsChanged)
	}
	return err
}

// --------------------------------------------------------------------
// Derived views
// --------------------------------------------------------------------

// CalendarEvents fetches trainings with customers and derives calendar
// events in the display timezone. Trainings without a parsable date are
// skipped.
func (c *Client) CalendarEvents(ctx context.Context) ([]CalendarEvent, error) {
	trainings, err := c.ListTrainingsWithCustomer(ctx)
	if err != nil {
		return nil, err
	}
	return calendar.Events(c.norm, trainings), nil
}

// ActivityTotals fetches trainings and aggregates total minutes per
// activity, sorted by descending minutes.
func (c *Client) ActivityTotals(ctx context.Context) ([]ActivityTotal, error) {
	trainings, err := c.ListTrainingsWithCustomer(ctx)
	if err != nil {
		return nil, err
	}
	return stats.ActivityTotals(trainings), nil
}

// --------------------------------------------------------------------
// Cross-view synchronization
// --------------------------------------------------------------------

// NewBus constructs a standalone notification bus for sharing across
// clients via WithBus.
func NewBus(log zerolog.Logger) *Bus { return events.New(log) }

// OnTrainingsChanged subscribes fn to training mutations. The caller owns
// the subscription and must Cancel it on unmount.
func (c *Client) OnTrainingsChanged(fn func(Notice)) *Subscription {
	return c.bus.Subscribe(events.TopicTrainingsChanged, fn)
}

// OnCustomersChanged subscribes fn to customer mutations.
func (c *Client) OnCustomersChanged(fn func(Notice)) *Subscription {
	return c.bus.Subscribe(events.TopicCustomersChanged, fn)
}

func (c *Client) observe(resource, method string, err error) {
	requestsTotal.WithLabelValues(resource, method).Inc()
	if err != nil {
		requestFailuresTotal.WithLabelValues(resource, method).Inc()
	}
}
