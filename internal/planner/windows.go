package planner

import (
	"time"

	"github.com/csandor/daybook/internal/domain"
)

// Windows holds the start dates of the four rolling named buckets,
// derived from today on every read and never stored.
type Windows struct {
	ThisWeekStart    time.Time // always a Monday
	NextWeekStart    time.Time // ThisWeekStart + 7d
	ThisWeekendStart time.Time // always a Saturday
	NextWeekendStart time.Time // ThisWeekendStart + 7d
}

// ComputeWindows derives the four planning windows from today.
//
// On Saturday or Sunday "this week" rolls over to the week about to
// begin: someone planning on the weekend is thinking about the coming
// work week, not the one already ending. The weekend itself does not
// roll over until it is finished, so "this weekend" still anchors to
// the Saturday that opened it.
func ComputeWindows(today time.Time) Windows {
	today = Date(today)
	dow := today.Weekday()

	thisWeek := StartOfWeekMonday(today)
	if dow == time.Saturday || dow == time.Sunday {
		thisWeek = AddDays(thisWeek, 7)
	}

	var thisWeekend time.Time
	switch dow {
	case time.Saturday:
		thisWeekend = today
	case time.Sunday:
		thisWeekend = AddDays(today, -1)
	default:
		thisWeekend = UpcomingSaturday(today)
	}

	return Windows{
		ThisWeekStart:    thisWeek,
		NextWeekStart:    AddDays(thisWeek, 7),
		ThisWeekendStart: thisWeekend,
		NextWeekendStart: AddDays(thisWeekend, 7),
	}
}

// windowSpan returns the inclusive date range covered by a window of
// the given kind: Mon-Fri for workweek, Sat-Sun for weekend.
func windowSpan(kind domain.WindowKind, start time.Time) (time.Time, time.Time) {
	if kind == domain.WindowWeekend {
		return start, AddDays(start, 1)
	}
	return start, AddDays(start, 4)
}
