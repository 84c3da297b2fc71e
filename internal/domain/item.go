package domain

import "time"

// Item is any placeable entry on the planning board: a task, a plan, or
// a focus. Plans may additionally carry an EndDate; when it is set and
// falls on or after a day placement, the plan spans every day from the
// placement day through EndDate inclusive.
type Item struct {
	ID        string
	Title     string
	Kind      ItemKind
	Status    ItemStatus
	Placement Placement

	// EndDate is only meaningful for plans with a day placement.
	EndDate *time.Time

	Notes string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// DisplayID returns a short identifier for list output.
func (i *Item) DisplayID() string {
	if len(i.ID) >= 8 {
		return i.ID[:8]
	}
	return i.ID
}

// Spans reports whether the item occupies more than one day.
func (i *Item) Spans() bool {
	return i.Kind == KindPlan &&
		i.Placement.IsDay() &&
		i.EndDate != nil &&
		!i.EndDate.Before(i.Placement.Day)
}
