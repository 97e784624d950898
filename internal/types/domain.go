package types

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Link is a single hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

// Links is the hypermedia link map attached to HAL resources.
type Links map[string]Link

// Self returns the self-link URL, or "" when absent.
func (l Links) Self() string {
	if l == nil {
		return ""
	}
	return l["self"].Href
}

// Customer represents a customer record as returned by the API.
// The id field is present on some endpoints and absent on pure HAL
// endpoints, where only _links carries identity.
type Customer struct {
	ID            int64  `json:"id,omitempty"`
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	StreetAddress string `json:"streetaddress,omitempty"`
	Postcode      string `json:"postcode,omitempty"`
	City          string `json:"city,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Links         Links  `json:"_links,omitempty"`
}

// DisplayName returns "Firstname Lastname" with surrounding whitespace
// trimmed, or "Unknown" when both parts are empty.
func (c Customer) DisplayName() string {
	name := strings.TrimSpace(strings.TrimSpace(c.Firstname) + " " + strings.TrimSpace(c.Lastname))
	if name == "" {
		return "Unknown"
	}
	return name
}

// Training represents a training record. The duration field arrives as a
// JSON number or a numeric string depending on the endpoint, and customer
// is either an embedded Customer object or an opaque reference string.
type Training struct {
	ID       int64       `json:"id,omitempty"`
	Date     string      `json:"date,omitempty"`
	Activity string      `json:"activity,omitempty"`
	Duration Minutes     `json:"duration,omitzero"`
	Customer CustomerRef `json:"customer,omitzero"`
	Links    Links       `json:"_links,omitempty"`
}

// CustomerRef holds a training's customer field, which the API encodes as
// either an embedded Customer-like object or a bare reference string
// (a resource URL). At most one of the two is populated.
type CustomerRef struct {
	Customer *Customer
	Ref      string
}

func (r *CustomerRef) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*r = CustomerRef{}
		return nil
	}
	if s[0] == '"' {
		return json.Unmarshal(data, &r.Ref)
	}
	var c Customer
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	*r = CustomerRef{Customer: &c}
	return nil
}

func (r CustomerRef) MarshalJSON() ([]byte, error) {
	if r.Customer != nil {
		return json.Marshal(r.Customer)
	}
	if r.Ref != "" {
		return json.Marshal(r.Ref)
	}
	return []byte("null"), nil
}

// DisplayName returns the embedded customer's display name, the bare
// reference when no object is embedded, or "" when the field was absent.
func (r CustomerRef) DisplayName() string {
	if r.Customer != nil {
		return r.Customer.DisplayName()
	}
	return r.Ref
}

// Minutes is a duration-in-minutes field that tolerates the API's mixed
// encodings: a JSON number, a numeric string ("45" or "45,5" with a comma
// decimal separator), or nothing at all.
type Minutes struct {
	value float64
	valid bool
}

// NewMinutes constructs a valid Minutes value for request bodies and
// fixtures.
func NewMinutes(v float64) Minutes { return Minutes{value: v, valid: true} }

func (m *Minutes) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*m = Minutes{}
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Unparsable durations are tolerated; downstream policy picks
		// between a default and a zero contribution.
		*m = Minutes{}
		return nil
	}
	*m = Minutes{value: v, valid: true}
	return nil
}

func (m Minutes) MarshalJSON() ([]byte, error) {
	if !m.valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.value)
}

// Value returns the parsed minutes and whether the field held a usable
// number.
func (m Minutes) Value() (float64, bool) { return m.value, m.valid }

// Or returns the parsed minutes, or def when the field was missing,
// unparseable, or non-positive.
func (m Minutes) Or(def float64) float64 {
	if !m.valid || m.value <= 0 {
		return def
	}
	return m.value
}

// OrZero returns the parsed minutes, or 0 when the field was unusable.
// Aggregation uses this so absent values never inflate totals.
func (m Minutes) OrZero() float64 {
	if !m.valid {
		return 0
	}
	return m.value
}

// ------------------------------
// Derived view models
// ------------------------------

// CalendarEvent is derived from a Training for calendar rendering.
// It is never persisted.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ActivityTotal is one aggregated bar of the statistics view.
type ActivityTotal struct {
	Activity string  `json:"activity"`
	Minutes  float64 `json:"minutes"`
}
