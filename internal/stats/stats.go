// Package stats aggregates trainings for the statistics view.
package stats

import (
	"sort"

	"github.com/Ralchuu/personaltrainer-client/internal/types"
)

// UnknownActivity labels trainings whose activity field is empty.
const UnknownActivity = "Unknown"

// ActivityTotals groups trainings by activity (verbatim, case-sensitive)
// and sums their durations in minutes. Unparsable durations contribute 0.
// The result is sorted by descending minutes; activities with equal
// totals keep first-appearance order.
func ActivityTotals(trainings []types.Training) []types.ActivityTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)

	for _, t := range trainings {
		activity := t.Activity
		if activity == "" {
			activity = UnknownActivity
		}
		if _, seen := totals[activity]; !seen {
			order = append(order, activity)
		}
		totals[activity] += t.Duration.OrZero()
	}

	rows := make([]types.ActivityTotal, 0, len(order))
	for _, activity := range order {
		rows = append(rows, types.ActivityTotal{Activity: activity, Minutes: totals[activity]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Minutes > rows[j].Minutes
	})
	return rows
}
