package client

import (
	"github.com/Ralchuu/personaltrainer-client/internal/events"
	"github.com/Ralchuu/personaltrainer-client/internal/temporal"
	"github.com/Ralchuu/personaltrainer-client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Customer    = types.Customer
	Training    = types.Training
	CustomerRef = types.CustomerRef
	Minutes     = types.Minutes
	Link        = types.Link
	Links       = types.Links

	// Request forms
	CustomerForm = types.CustomerForm
	TrainingForm = types.TrainingForm

	// Derived view models
	CalendarEvent = types.CalendarEvent
	ActivityTotal = types.ActivityTotal

	// Temporal normalization
	Normalizer = temporal.Normalizer

	// Cross-view notifications
	Topic        = events.Topic
	Notice       = events.Notice
	Subscription = events.Subscription
	Bus          = events.Bus
)

// Notification topics.
const (
	TopicTrainingsChanged = events.TopicTrainingsChanged
	TopicCustomersChanged = events.TopicCustomersChanged
)

// NewMinutes constructs a Minutes value for fixtures and request bodies.
func NewMinutes(v float64) Minutes { return types.NewMinutes(v) }

// NewNormalizer builds a temporal normalizer for the named IANA timezone.
func NewNormalizer(tz string) (*Normalizer, error) { return temporal.New(tz) }

// DefaultMinutes is the duration assumed when a training's duration field
// is unusable.
const DefaultMinutes = temporal.DefaultMinutes
