package testutil

import (
	"context"
	"sync/atomic"

	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/repository"
)

// FailOnNthSetPriority wraps a MovieRepo and injects an error on the
// Nth SetPriority call, counted from 1. Reads and other writes pass
// through, which lets tests break a multi-write rank sequence at a
// precise point.
type FailOnNthSetPriority struct {
	repository.MovieRepo
	FailOn int32
	Err    error

	count atomic.Int32
}

func (r *FailOnNthSetPriority) SetPriority(ctx context.Context, id string, priority *int) error {
	if r.count.Add(1) == r.FailOn {
		return r.Err
	}
	return r.MovieRepo.SetPriority(ctx, id, priority)
}

// FailingItemUpdates wraps an ItemRepo and fails every Update call,
// for exercising the optimistic-move rollback path.
type FailingItemUpdates struct {
	repository.ItemRepo
	Err error
}

func (r *FailingItemUpdates) Update(ctx context.Context, i *domain.Item) error {
	return r.Err
}
