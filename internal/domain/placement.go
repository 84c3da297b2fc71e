package domain

import "time"

// PlacementForm discriminates the three placement shapes.
type PlacementForm string

const (
	PlacementNone   PlacementForm = "none"
	PlacementDay    PlacementForm = "day"
	PlacementWindow PlacementForm = "window"
)

// Placement says where an item lives on the planning board: nowhere
// ("Open"), pinned to one calendar day, or parked in a named rolling
// window. Exactly one form holds at a time; the Day and Window fields
// are only meaningful for their own form.
type Placement struct {
	Form        PlacementForm
	Day         time.Time
	WindowKind  WindowKind
	WindowStart time.Time
}

// NoPlacement returns the unscheduled placement.
func NoPlacement() Placement {
	return Placement{Form: PlacementNone}
}

// DayPlacement pins to a single calendar day.
func DayPlacement(day time.Time) Placement {
	return Placement{Form: PlacementDay, Day: day}
}

// WindowPlacement parks in a named window anchored at start
// (the Monday for workweek, the Saturday for weekend).
func WindowPlacement(kind WindowKind, start time.Time) Placement {
	return Placement{Form: PlacementWindow, WindowKind: kind, WindowStart: start}
}

// Equal reports whether two placements are the same form with the same
// payload. Date comparison is instant-based, so callers must keep
// placements at date-only precision.
func (p Placement) Equal(o Placement) bool {
	if p.Form != o.Form {
		return false
	}
	switch p.Form {
	case PlacementDay:
		return p.Day.Equal(o.Day)
	case PlacementWindow:
		return p.WindowKind == o.WindowKind && p.WindowStart.Equal(o.WindowStart)
	default:
		return true
	}
}

func (p Placement) IsNone() bool   { return p.Form == PlacementNone || p.Form == "" }
func (p Placement) IsDay() bool    { return p.Form == PlacementDay }
func (p Placement) IsWindow() bool { return p.Form == PlacementWindow }
