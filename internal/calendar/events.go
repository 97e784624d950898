// Package calendar derives calendar events from trainings.
package calendar

import (
	"strings"

	"github.com/Ralchuu/personaltrainer-client/internal/identity"
	"github.com/Ralchuu/personaltrainer-client/internal/temporal"
	"github.com/Ralchuu/personaltrainer-client/internal/types"
)

// Events maps trainings onto calendar events in the normalizer's display
// timezone. A training without a parsable date is skipped rather than
// failing the whole set. The title is the activity, suffixed with the
// customer's name when one is embedded.
func Events(norm *temporal.Normalizer, trainings []types.Training) []types.CalendarEvent {
	out := make([]types.CalendarEvent, 0, len(trainings))
	for _, t := range trainings {
		start, err := norm.Parse(t.Date)
		if err != nil {
			continue
		}
		start, end := norm.Window(start, t.Duration)

		id := identity.Resolve(t.Links.Self(), t.ID, t.Date, t.Activity)
		out = append(out, types.CalendarEvent{
			ID:    id.Key,
			Title: eventTitle(t),
			Start: start,
			End:   end,
		})
	}
	return out
}

func eventTitle(t types.Training) string {
	title := t.Activity
	if c := t.Customer.Customer; c != nil {
		name := strings.TrimSpace(strings.TrimSpace(c.Firstname) + " " + strings.TrimSpace(c.Lastname))
		if name != "" {
			title += " / " + name
		}
	} else if t.Customer.Ref != "" {
		title += " / " + t.Customer.Ref
	}
	return title
}
