package planner

import (
	"fmt"
	"time"
)

// dateLayout is the ISO calendar-day format used everywhere a date
// crosses a boundary (storage, tokens, CLI flags). Lexicographic order
// on these strings equals chronological order, and the rest of the
// package relies on that.
const dateLayout = "2006-01-02"

// ISODate formats a date as YYYY-MM-DD.
func ISODate(d time.Time) string {
	return d.Format(dateLayout)
}

// ParseISODate parses a YYYY-MM-DD string into a date at midnight UTC.
func ParseISODate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// Date truncates a time to its calendar day. All planner functions
// expect date-only values; this is the normalization point for inputs
// that may carry a time of day.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// StartOfWeekMonday returns the Monday of the week containing d.
func StartOfWeekMonday(d time.Time) time.Time {
	wd := int(d.Weekday())
	if wd == 0 {
		wd = 7
	}
	return AddDays(d, -(wd - 1))
}

// UpcomingSaturday returns the next Saturday on or after d. If d is
// already a Saturday it is returned unchanged.
func UpcomingSaturday(d time.Time) time.Time {
	offset := (int(time.Saturday) - int(d.Weekday()) + 7) % 7
	return AddDays(d, offset)
}

// NextWeekdayAfter returns the next occurrence of target strictly after
// d. If d itself falls on target, the result is a full week later:
// "next monday" on a Monday means the following one.
func NextWeekdayAfter(d time.Time, target time.Weekday) time.Time {
	offset := (int(target) - int(d.Weekday()) + 7) % 7
	if offset == 0 {
		offset = 7
	}
	return AddDays(d, offset)
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}
