// Package events is a small in-process publish/subscribe channel used to
// keep independently-fetched views in sync after a mutation. Delivery is
// synchronous and best-effort: a view that is not subscribed at publish
// time simply misses the notice, which is fine because it re-fetches on
// its next mount.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Topic identifies a class of change notices.
type Topic string

const (
	// TopicTrainingsChanged fires after a training create or delete.
	TopicTrainingsChanged Topic = "trainings-changed"
	// TopicCustomersChanged fires after a customer create, update or delete.
	TopicCustomersChanged Topic = "customers-changed"
)

// Notice is delivered to subscribers. The payload is advisory only;
// subscribers are expected to re-fetch, not to patch local state from it.
type Notice struct {
	Topic Topic
	At    time.Time
}

// Handler receives notices. Handlers run synchronously on the publishing
// goroutine and must not block.
type Handler func(Notice)

// Bus fans notices out to subscribers per topic. The zero value is not
// usable; construct with New.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic]map[string]Handler
	log  zerolog.Logger
}

// New constructs an empty bus.
func New(log zerolog.Logger) *Bus {
	return &Bus{
		subs: make(map[Topic]map[string]Handler),
		log:  log,
	}
}

// Subscription is one view's registration on a topic. Views must call
// Cancel on unmount so late notices never reach dead handlers.
type Subscription struct {
	bus   *Bus
	topic Topic
	token string
}

// Cancel removes the subscription. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if handlers, ok := s.bus.subs[s.topic]; ok {
		delete(handlers, s.token)
	}
	s.bus = nil
}

// Subscribe registers fn for topic and returns the subscription handle.
func (b *Bus) Subscribe(topic Topic, fn Handler) *Subscription {
	token := uuid.NewString()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[string]Handler)
	}
	b.subs[topic][token] = fn
	return &Subscription{bus: b, topic: topic, token: token}
}

// Publish delivers a notice to every current subscriber of topic,
// synchronously, in unspecified order. A panicking handler is logged and
// does not stop delivery to the rest.
func (b *Bus) Publish(topic Topic) {
	notice := Notice{Topic: topic, At: time.Now()}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[topic]))
	for _, fn := range b.subs[topic] {
		handlers = append(handlers, fn)
	}
	b.mu.RUnlock()

	noticesPublishedTotal.WithLabelValues(string(topic)).Inc()
	b.log.Debug().Str("topic", string(topic)).Int("subscribers", len(handlers)).Msg("publish notice")

	for _, fn := range handlers {
		b.deliver(notice, fn)
	}
}

func (b *Bus) deliver(notice Notice, fn Handler) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().Str("topic", string(notice.Topic)).Interface("panic", r).Msg("subscriber panic")
		}
	}()
	fn(notice)
}
