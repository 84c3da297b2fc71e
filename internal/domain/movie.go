package domain

import "time"

// Reserved priority values in the movie queue. These are contractual
// integers shared with the stored data, not tunables.
const (
	// PriorityWatching marks the movie currently being watched. It sits
	// above the strict ranking and cannot be moved further up.
	PriorityWatching = 0

	// PriorityOnDeck marks the loosely ordered holding area below the
	// strict 1..N ranking.
	PriorityOnDeck = 99
)

// Movie is a backlog entry. Priority nil means unranked: the movie is
// shelved and does not appear in the active queue at all.
type Movie struct {
	ID       string
	Title    string
	Year     int
	Priority *int
	Status   MovieStatus
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
	WatchedAt *time.Time
}

// Ranked reports whether the movie participates in the active queue.
func (m *Movie) Ranked() bool {
	return m.Priority != nil
}

// StrictRank reports whether the movie holds a numeric rank in the
// strict 1..N ordering (not a sentinel, not unranked).
func (m *Movie) StrictRank() bool {
	return m.Priority != nil && *m.Priority != PriorityWatching && *m.Priority != PriorityOnDeck
}

// DisplayID returns a short identifier for list output.
func (m *Movie) DisplayID() string {
	if len(m.ID) >= 8 {
		return m.ID[:8]
	}
	return m.ID
}
