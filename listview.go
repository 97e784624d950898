package client

// List-view helpers: the filtering and column sorting the table views
// apply on top of fetched collections. All functions are pure and return
// fresh slices; sorts are stable.

import (
	"sort"
	"strconv"
	"strings"
)

// TrainingSortKey names a sortable column of the trainings table.
type TrainingSortKey string

const (
	SortTrainingsByDate     TrainingSortKey = "date"
	SortTrainingsByActivity TrainingSortKey = "activity"
	SortTrainingsByDuration TrainingSortKey = "duration"
)

// CustomerSortKey names a sortable column of the customers table.
type CustomerSortKey string

const (
	SortCustomersByID    CustomerSortKey = "id"
	SortCustomersByName  CustomerSortKey = "name"
	SortCustomersByEmail CustomerSortKey = "email"
	SortCustomersByPhone CustomerSortKey = "phone"
)

// SortOrder is the direction of a column sort.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// FilterTrainings returns the trainings whose activity or customer name
// contains query, case-insensitively. An empty query keeps everything.
func FilterTrainings(list []Training, query string) []Training {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Training, 0, len(list))
	for _, t := range list {
		if q == "" ||
			strings.Contains(strings.ToLower(t.Activity), q) ||
			strings.Contains(strings.ToLower(t.Customer.DisplayName()), q) {
			out = append(out, t)
		}
	}
	return out
}

// SortTrainings orders a copy of list by the given column. Dates are
// compared as instants in the normalizer's zone; unparsable dates sort
// last. Durations compare numerically with unusable values as 0;
// activities compare case-insensitively.
func SortTrainings(norm *Normalizer, list []Training, key TrainingSortKey, order SortOrder) []Training {
	out := make([]Training, len(list))
	copy(out, list)

	less := func(a, b Training) bool {
		switch key {
		case SortTrainingsByActivity:
			return strings.ToLower(a.Activity) < strings.ToLower(b.Activity)
		case SortTrainingsByDuration:
			return a.Duration.OrZero() < b.Duration.OrZero()
		default: // date
			ta, errA := norm.Parse(a.Date)
			tb, errB := norm.Parse(b.Date)
			if errA != nil || errB != nil {
				return errA == nil && errB != nil
			}
			return ta.Before(tb)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// FilterCustomers returns the customers whose name, email or phone
// contains query, case-insensitively.
func FilterCustomers(list []Customer, query string) []Customer {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Customer, 0, len(list))
	for _, c := range list {
		if q == "" ||
			strings.Contains(strings.ToLower(c.DisplayName()), q) ||
			strings.Contains(strings.ToLower(c.Email), q) ||
			strings.Contains(strings.ToLower(c.Phone), q) {
			out = append(out, c)
		}
	}
	return out
}

// SortCustomers orders a copy of list by the given column. Strings
// compare case-insensitively; ids numerically with 0 for records that
// carry none.
func SortCustomers(list []Customer, key CustomerSortKey, order SortOrder) []Customer {
	out := make([]Customer, len(list))
	copy(out, list)

	less := func(a, b Customer) bool {
		switch key {
		case SortCustomersByID:
			return a.ID < b.ID
		case SortCustomersByEmail:
			return strings.ToLower(a.Email) < strings.ToLower(b.Email)
		case SortCustomersByPhone:
			return strings.ToLower(a.Phone) < strings.ToLower(b.Phone)
		default: // name
			return strings.ToLower(a.DisplayName()) < strings.ToLower(b.DisplayName())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// TrainingRow is a training formatted for tabular display.
type TrainingRow struct {
	Date     string
	Activity string
	Duration string
	Customer string
}

// FormatTrainingRow renders one table row. Unparsable dates become "-",
// as do unusable durations; valid durations are suffixed with " min".
func FormatTrainingRow(norm *Normalizer, t Training) TrainingRow {
	duration := "-"
	if v, ok := t.Duration.Value(); ok {
		duration = strconv.FormatFloat(v, 'f', -1, 64) + " min"
	}
	activity := t.Activity
	if activity == "" {
		activity = "-"
	}
	customer := t.Customer.DisplayName()
	if customer == "" {
		customer = "-"
	}
	return TrainingRow{
		Date:     norm.FormatTable(t.Date),
		Activity: activity,
		Duration: duration,
		Customer: customer,
	}
}
