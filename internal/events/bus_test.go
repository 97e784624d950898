package events

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestPublishReachesSubscribers(t *testing.T) {
	t.Parallel()
	b := New(zerolog.Nop())

	var got []Notice
	sub := b.Subscribe(TopicTrainingsChanged, func(n Notice) { got = append(got, n) })
	defer sub.Cancel()

	b.Publish(TopicTrainingsChanged)
	if len(got) != 1 || got[0].Topic != TopicTrainingsChanged {
		t.Fatalf("unexpected notices: %+v", got)
	}
}

func TestPublishIsTopicScoped(t *testing.T) {
	t.Parallel()
	b := New(zerolog.Nop())

	trainings := 0
	customers := 0
	defer b.Subscribe(TopicTrainingsChanged, func(Notice) { trainings++ }).Cancel()
	defer b.Subscribe(TopicCustomersChanged, func(Notice) { customers++ }).Cancel()

	b.Publish(TopicCustomersChanged)
	if trainings != 0 || customers != 1 {
		t.Fatalf("trainings=%d customers=%d", trainings, customers)
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	t.Parallel()
	b := New(zerolog.Nop())

	calls := 0
	sub := b.Subscribe(TopicTrainingsChanged, func(Notice) { calls++ })
	b.Publish(TopicTrainingsChanged)
	sub.Cancel()
	b.Publish(TopicTrainingsChanged)

	if calls != 1 {
		t.Fatalf("calls after cancel: %d", calls)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	t.Parallel()
	b := New(zerolog.Nop())
	sub := b.Subscribe(TopicTrainingsChanged, func(Notice) {})
	sub.Cancel()
	sub.Cancel()

	var nilSub *Subscription
	nilSub.Cancel()
}

func TestPanickingSubscriberDoesNotStopDelivery(t *testing.T) {
	t.Parallel()
	b := New(zerolog.Nop())

	delivered := 0
	defer b.Subscribe(TopicTrainingsChanged, func(Notice) { panic("boom") }).Cancel()
	defer b.Subscribe(TopicTrainingsChanged, func(Notice) { delivered++ }).Cancel()

	b.Publish(TopicTrainingsChanged)
	if delivered != 1 {
		t.Fatalf("second subscriber not reached: %d", delivered)
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	t.Parallel()
	b := New(zerolog.Nop())
	b.Publish(TopicTrainingsChanged)
}
