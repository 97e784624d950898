// Package temporal centralizes date parsing and formatting. The API
// encodes training timestamps in several ways (wall-clock with no
// offset, UTC-marked, offset-carrying) and every view must render the same
// local time regardless of which one it got. All timezone math lives
// here; views never do their own.
package temporal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ralchuu/personaltrainer-client/internal/types"
)

// DefaultMinutes is the duration assumed when a training's duration is
// missing, unparseable, or non-positive.
const DefaultMinutes = 60

// TableFormat renders day.month.year on a 24-hour clock.
const TableFormat = "02.01.2006 15:04"

// ErrNoDate marks an absent or unparsable date field. Callers skip the
// record (calendar) or render a placeholder (tables); it never propagates
// to the user.
var ErrNoDate = errors.New("no parsable date")

// layouts without an offset are interpreted as wall-clock time in the
// target zone.
var wallClockLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// layouts carrying an offset or UTC marker are converted into the target
// zone after parsing.
var absoluteLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z07:00",
}

// Normalizer converts the API's date strings into one fixed display
// timezone. The zone is explicit construction state, not a process-wide
// default.
type Normalizer struct {
	loc *time.Location
}

// New builds a Normalizer for the named IANA timezone.
func New(tz string) (*Normalizer, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("temporal: load timezone %q: %w", tz, err)
	}
	return &Normalizer{loc: loc}, nil
}

// MustNew is New for known-good zone names; it panics on error.
func MustNew(tz string) *Normalizer {
	n, err := New(tz)
	if err != nil {
		panic(err)
	}
	return n
}

// Location returns the fixed display timezone.
func (n *Normalizer) Location() *time.Location { return n.loc }

// Parse converts a raw date string into the display timezone. Strings
// without an offset are taken as wall-clock time already in that zone;
// strings with an offset or Z suffix are converted into it. A date-only
// string yields local midnight. Empty or unparsable input returns
// ErrNoDate.
func (n *Normalizer) Parse(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrNoDate
	}
	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, raw, n.loc); err == nil {
			return t, nil
		}
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(n.loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrNoDate, raw)
}

// Window returns the [start, end) interval of a training: end is start
// plus the duration, defaulting to DefaultMinutes when the field is
// unusable.
func (n *Normalizer) Window(start time.Time, duration types.Minutes) (time.Time, time.Time) {
	mins := duration.Or(DefaultMinutes)
	return start, start.Add(time.Duration(mins * float64(time.Minute)))
}

// FormatTable renders a raw date string for tabular display, or "-" when
// it cannot be parsed.
func (n *Normalizer) FormatTable(raw string) string {
	t, err := n.Parse(raw)
	if err != nil {
		return "-"
	}
	return t.Format(TableFormat)
}

// FormatISO renders an instant as RFC3339 for machine consumption
// (calendar library interop).
func (n *Normalizer) FormatISO(t time.Time) string {
	return t.Format(time.RFC3339)
}
