package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/repository"
	"github.com/csandor/daybook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isoDate(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newItemFixture(t *testing.T) (ItemService, repository.ItemRepo) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(db)
	return NewItemService(repo), repo
}

func TestItemService_QuickAdd_WithDirectives(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	today := isoDate("2026-01-07") // Wednesday

	item, err := svc.QuickAdd(ctx, "review budget #plan #nextweek", today, domain.KindTask)
	require.NoError(t, err)

	assert.Equal(t, "review budget", item.Title)
	assert.Equal(t, domain.KindPlan, item.Kind)
	require.True(t, item.Placement.IsWindow())
	assert.Equal(t, domain.WindowWorkweek, item.Placement.WindowKind)
	assert.Equal(t, "2026-01-12", item.Placement.WindowStart.Format("2006-01-02"))

	fetched, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, fetched.Placement.Equal(item.Placement), "placement persisted")
}

func TestItemService_QuickAdd_RejectsEmptyTitle(t *testing.T) {
	svc, _ := newItemFixture(t)

	_, err := svc.QuickAdd(context.Background(), "#today #task", isoDate("2026-01-07"), domain.KindTask)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestItemService_Move_DayToWindow(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	today := isoDate("2026-01-07")

	item, err := svc.QuickAdd(ctx, "dentist #today", today, domain.KindTask)
	require.NoError(t, err)

	moved, changed, err := svc.Move(ctx, item.ID, "#weekend", today)
	require.NoError(t, err)
	assert.True(t, changed)
	require.True(t, moved.Placement.IsWindow())
	assert.Equal(t, domain.WindowWeekend, moved.Placement.WindowKind)
	assert.Equal(t, "2026-01-10", moved.Placement.WindowStart.Format("2006-01-02"))
}

func TestItemService_Move_TokenTarget(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	today := isoDate("2026-01-07")

	item, err := svc.QuickAdd(ctx, "call plumber", today, domain.KindTask)
	require.NoError(t, err)

	moved, changed, err := svc.Move(ctx, item.ID, "D|2026-01-09", today)
	require.NoError(t, err)
	assert.True(t, changed)
	require.True(t, moved.Placement.IsDay())
	assert.Equal(t, "2026-01-09", moved.Placement.Day.Format("2006-01-02"))
}

func TestItemService_Move_SeparatorTokenIsNoop(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	today := isoDate("2026-01-07")

	item, err := svc.QuickAdd(ctx, "untouched #today", today, domain.KindTask)
	require.NoError(t, err)

	moved, changed, err := svc.Move(ctx, item.ID, "---", today)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.True(t, moved.Placement.Equal(item.Placement))
}

func TestItemService_Move_RollsBackOnWriteFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteItemRepo(db)
	ctx := context.Background()
	today := isoDate("2026-01-07")

	seeded := testutil.NewTestItem("sticky",
		testutil.WithPlacement(domain.DayPlacement(isoDate("2026-01-08"))))
	require.NoError(t, repo.Create(ctx, seeded))

	boom := errors.New("disk full")
	svc := NewItemService(&testutil.FailingItemUpdates{ItemRepo: repo, Err: boom})

	moved, changed, err := svc.Move(ctx, seeded.ID, "#weekend", today)
	require.ErrorIs(t, err, boom)
	assert.False(t, changed)

	// The in-memory item reverts to its pre-move placement.
	require.True(t, moved.Placement.IsDay())
	assert.Equal(t, "2026-01-08", moved.Placement.Day.Format("2006-01-02"))

	// And the store never saw the move.
	stored, err := repo.GetByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.True(t, stored.Placement.Equal(seeded.Placement))
}

func TestItemService_SetEndDate_PlansOnly(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	today := isoDate("2026-01-07")

	task, err := svc.QuickAdd(ctx, "not a plan #today", today, domain.KindTask)
	require.NoError(t, err)
	end := isoDate("2026-01-09")
	_, err = svc.SetEndDate(ctx, task.ID, &end)
	assert.Error(t, err)

	plan, err := svc.QuickAdd(ctx, "offsite #plan #today", today, domain.KindTask)
	require.NoError(t, err)
	updated, err := svc.SetEndDate(ctx, plan.ID, &end)
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	assert.Equal(t, "2026-01-09", updated.EndDate.Format("2006-01-02"))
}

func TestItemService_MarkDone(t *testing.T) {
	svc, repo := newItemFixture(t)
	ctx := context.Background()

	item, err := svc.QuickAdd(ctx, "finish me", isoDate("2026-01-07"), domain.KindTask)
	require.NoError(t, err)
	require.NoError(t, svc.MarkDone(ctx, item.ID))

	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemDone, stored.Status)
	assert.NotNil(t, stored.CompletedAt)

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)
}
