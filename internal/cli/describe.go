package cli

import (
	"fmt"
	"time"

	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/planner"
)

// placementLabel describes where an item sits, phrased relative to the
// given reference day.
func placementLabel(p domain.Placement, today time.Time) string {
	if p.IsDay() {
		return p.Day.Format("Mon Jan 2")
	}
	if !p.IsWindow() {
		return "open"
	}

	w := planner.ComputeWindows(today)
	switch {
	case p.WindowKind == domain.WindowWorkweek && planner.SameDay(p.WindowStart, w.ThisWeekStart):
		return "this week"
	case p.WindowKind == domain.WindowWorkweek && planner.SameDay(p.WindowStart, w.NextWeekStart):
		return "next week"
	case p.WindowKind == domain.WindowWeekend && planner.SameDay(p.WindowStart, w.ThisWeekendStart):
		return "this weekend"
	case p.WindowKind == domain.WindowWeekend && planner.SameDay(p.WindowStart, w.NextWeekendStart):
		return "next weekend"
	default:
		return fmt.Sprintf("%s of %s", p.WindowKind, planner.ISODate(p.WindowStart))
	}
}
