package planner

import (
	"time"

	"github.com/csandor/daybook/internal/domain"
)

// OccupiedDays returns the visible days an item covers. Only plans with
// a day placement can span; everything else occupies at most its own
// day. The effective end is EndDate when it is set and not before the
// start, otherwise the start itself. This is a display-time expansion:
// the item is stored once and rendered once per qualifying day.
func OccupiedDays(item *domain.Item, visibleDays []time.Time) []time.Time {
	if !item.Placement.IsDay() {
		return nil
	}
	start := Date(item.Placement.Day)
	end := start
	if item.Kind == domain.KindPlan && item.EndDate != nil {
		if e := Date(*item.EndDate); !e.Before(start) {
			end = e
		}
	}

	var days []time.Time
	for _, d := range visibleDays {
		d = Date(d)
		if !d.Before(start) && !d.After(end) {
			days = append(days, d)
		}
	}
	return days
}
