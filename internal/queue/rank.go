// Package queue maintains the integer ranking of the movie backlog.
// Everything here is pure: a plan function takes a snapshot of the
// ranked collection and returns the mutations to persist, in the order
// they must be written.
package queue

import (
	"errors"

	"github.com/csandor/daybook/internal/domain"
)

var (
	// ErrNotInQueue means the movie is not part of the snapshot.
	ErrNotInQueue = errors.New("movie not in queue")
	// ErrNotRanked means the movie has no priority and cannot be moved.
	ErrNotRanked = errors.New("movie is not ranked")
)

// Direction of a rank move.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Mutation is one persisted priority change. A nil Priority removes the
// movie from the active queue.
type Mutation struct {
	ID       string
	Priority *int
}

func intPtr(v int) *int { return &v }

// PlanMove computes the mutations for moving one movie up or down.
//
// The plan is at most two mutations. When two ranks swap, the other
// movie's update comes first: if persistence dies between the writes,
// the queue is left with two movies sharing a rank, which the next move
// resolves naturally, rather than with a vacated rank.
func PlanMove(snapshot []*domain.Movie, id string, dir Direction) ([]Mutation, error) {
	mover := findMovie(snapshot, id)
	if mover == nil {
		return nil, ErrNotInQueue
	}
	if mover.Priority == nil {
		return nil, ErrNotRanked
	}
	p := *mover.Priority

	switch {
	case p == domain.PriorityWatching && dir == Up:
		// Nothing outranks the movie being watched.
		return nil, nil
	case p == domain.PriorityOnDeck:
		return planOnDeckMove(snapshot, mover, dir), nil
	case p == 1 && dir == Up:
		return nil, nil
	}

	target := p + 1
	if dir == Up {
		target = p - 1
	}

	sameCount, targetCount := 0, 0
	var targetOccupant *domain.Movie
	maxStrict := 0
	for _, m := range snapshot {
		if m.Priority == nil {
			continue
		}
		switch *m.Priority {
		case p:
			sameCount++
		case target:
			targetCount++
			targetOccupant = m
		}
		if *m.Priority != domain.PriorityOnDeck && *m.Priority > maxStrict {
			maxStrict = *m.Priority
		}
	}

	// Sole occupant of the top rank moving down drops straight into the
	// on-deck area instead of opening a new numeric rank past the max.
	if dir == Down && p == maxStrict && sameCount == 1 {
		return []Mutation{{ID: mover.ID, Priority: intPtr(domain.PriorityOnDeck)}}, nil
	}

	if sameCount == 1 && targetCount == 1 {
		return []Mutation{
			{ID: targetOccupant.ID, Priority: intPtr(p)},
			{ID: mover.ID, Priority: intPtr(target)},
		}, nil
	}

	// Batch case: only the moved movie shifts; co-occupants of either
	// rank stay put even if that leaves ranks unevenly filled.
	return []Mutation{{ID: mover.ID, Priority: intPtr(target)}}, nil
}

// planOnDeckMove handles the 99 sentinel: up promotes to the bottom of
// the strict ranking, down drops out of the active queue entirely.
func planOnDeckMove(snapshot []*domain.Movie, mover *domain.Movie, dir Direction) []Mutation {
	if dir == Down {
		return []Mutation{{ID: mover.ID, Priority: nil}}
	}
	maxStrict := 0
	for _, m := range snapshot {
		if m.Priority == nil || *m.Priority == domain.PriorityOnDeck {
			continue
		}
		if *m.Priority > maxStrict {
			maxStrict = *m.Priority
		}
	}
	next := maxStrict + 1
	if next < 1 {
		next = 1
	}
	return []Mutation{{ID: mover.ID, Priority: intPtr(next)}}
}

// PlanMarkDone clears a movie's priority and closes the numeric gap it
// leaves: every strict rank above the vacated one shifts down by one
// (floor 0). The watching and on-deck sentinels are untouched. The
// cleared movie's mutation comes first.
func PlanMarkDone(snapshot []*domain.Movie, id string) ([]Mutation, error) {
	mover := findMovie(snapshot, id)
	if mover == nil {
		return nil, ErrNotInQueue
	}

	muts := []Mutation{{ID: mover.ID, Priority: nil}}
	if mover.Priority == nil || *mover.Priority == domain.PriorityOnDeck {
		return muts, nil
	}
	former := *mover.Priority

	for _, m := range snapshot {
		if m.ID == mover.ID || m.Priority == nil {
			continue
		}
		p := *m.Priority
		if p == domain.PriorityOnDeck || p <= former {
			continue
		}
		next := p - 1
		if next < 0 {
			next = 0
		}
		muts = append(muts, Mutation{ID: m.ID, Priority: intPtr(next)})
	}
	return muts, nil
}

func findMovie(snapshot []*domain.Movie, id string) *domain.Movie {
	for _, m := range snapshot {
		if m.ID == id {
			return m
		}
	}
	return nil
}
