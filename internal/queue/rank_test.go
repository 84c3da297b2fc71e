package queue

import (
	"testing"

	"github.com/csandor/daybook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ranked(id string, priority int) *domain.Movie {
	p := priority
	return &domain.Movie{ID: id, Title: id, Priority: &p, Status: domain.MovieBacklog}
}

func unranked(id string) *domain.Movie {
	return &domain.Movie{ID: id, Title: id, Status: domain.MovieBacklog}
}

func mutationByID(muts []Mutation, id string) *Mutation {
	for i := range muts {
		if muts[i].ID == id {
			return &muts[i]
		}
	}
	return nil
}

func TestPlanMove_SwapAdjacentSingletons(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), ranked("b", 2), ranked("c", 3)}

	muts, err := PlanMove(snapshot, "c", Up)
	require.NoError(t, err)
	require.Len(t, muts, 2)

	// The displaced occupant is written first so a crash between the
	// writes leaves a shared rank, not a hole.
	assert.Equal(t, "b", muts[0].ID)
	assert.Equal(t, 3, *muts[0].Priority)
	assert.Equal(t, "c", muts[1].ID)
	assert.Equal(t, 2, *muts[1].Priority)
}

func TestPlanMove_BatchMovesOnlyTheMover(t *testing.T) {
	// Three movies share rank 2; rank 3 is empty but 4 is occupied, so
	// rank 2 is not the max and the collapse rule does not fire.
	snapshot := []*domain.Movie{
		ranked("a", 2), ranked("b", 2), ranked("c", 2), ranked("d", 4),
	}

	muts, err := PlanMove(snapshot, "b", Down)
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Equal(t, "b", muts[0].ID)
	assert.Equal(t, 3, *muts[0].Priority)
}

func TestPlanMove_UpIntoSharedRankMovesOnlyTheMover(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), ranked("b", 1), ranked("c", 2)}

	muts, err := PlanMove(snapshot, "c", Up)
	require.NoError(t, err)
	require.Len(t, muts, 1, "target rank is shared, no swap")
	assert.Equal(t, "c", muts[0].ID)
	assert.Equal(t, 1, *muts[0].Priority)
}

func TestPlanMove_CollapseToOnDeck(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), ranked("b", 5)}

	muts, err := PlanMove(snapshot, "b", Down)
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Equal(t, domain.PriorityOnDeck, *muts[0].Priority,
		"sole occupant of the max rank skips straight to on deck")
}

func TestPlanMove_SharedMaxRankDoesNotCollapse(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 5), ranked("b", 5)}

	muts, err := PlanMove(snapshot, "b", Down)
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Equal(t, 6, *muts[0].Priority, "batch rule applies when the max rank is shared")
}

func TestPlanMove_WatchingCannotMoveUp(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 0), ranked("b", 1)}

	muts, err := PlanMove(snapshot, "a", Up)
	require.NoError(t, err)
	assert.Empty(t, muts)
}

func TestPlanMove_WatchingMovesDownLikeAnyRank(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 0), ranked("b", 1), ranked("c", 2)}

	muts, err := PlanMove(snapshot, "a", Down)
	require.NoError(t, err)
	require.Len(t, muts, 2, "singleton source and target swap")
	assert.Equal(t, "b", muts[0].ID)
	assert.Equal(t, 0, *muts[0].Priority)
	assert.Equal(t, "a", muts[1].ID)
	assert.Equal(t, 1, *muts[1].Priority)
}

func TestPlanMove_TopRankUpIsNoop(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), ranked("b", 2)}

	muts, err := PlanMove(snapshot, "a", Up)
	require.NoError(t, err)
	assert.Empty(t, muts)
}

func TestPlanMove_OnDeckUpJoinsBottomOfRanking(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), ranked("b", 3), ranked("c", domain.PriorityOnDeck)}

	muts, err := PlanMove(snapshot, "c", Up)
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Equal(t, 4, *muts[0].Priority, "one past the highest strict rank")
}

func TestPlanMove_OnDeckUpWithEmptyRankingTakesRankOne(t *testing.T) {
	snapshot := []*domain.Movie{ranked("c", domain.PriorityOnDeck), unranked("x")}

	muts, err := PlanMove(snapshot, "c", Up)
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Equal(t, 1, *muts[0].Priority)
}

func TestPlanMove_OnDeckDownLeavesQueue(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), ranked("c", domain.PriorityOnDeck)}

	muts, err := PlanMove(snapshot, "c", Down)
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Nil(t, muts[0].Priority)
}

func TestPlanMove_Errors(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), unranked("x")}

	_, err := PlanMove(snapshot, "missing", Up)
	assert.ErrorIs(t, err, ErrNotInQueue)

	_, err = PlanMove(snapshot, "x", Up)
	assert.ErrorIs(t, err, ErrNotRanked)
}

func TestPlanMarkDone_RebalancesAboveVacatedRank(t *testing.T) {
	snapshot := []*domain.Movie{
		ranked("w", 0), ranked("a", 1), ranked("b", 2), ranked("c", 3),
		ranked("d", 4), ranked("deck", domain.PriorityOnDeck),
	}

	muts, err := PlanMarkDone(snapshot, "b")
	require.NoError(t, err)
	require.Len(t, muts, 3)

	assert.Equal(t, "b", muts[0].ID)
	assert.Nil(t, muts[0].Priority)

	c := mutationByID(muts, "c")
	require.NotNil(t, c)
	assert.Equal(t, 2, *c.Priority)
	d := mutationByID(muts, "d")
	require.NotNil(t, d)
	assert.Equal(t, 3, *d.Priority)

	assert.Nil(t, mutationByID(muts, "w"), "watching sentinel untouched")
	assert.Nil(t, mutationByID(muts, "a"), "ranks below the gap untouched")
	assert.Nil(t, mutationByID(muts, "deck"), "on-deck sentinel untouched")
}

func TestPlanMarkDone_OnDeckNoRebalance(t *testing.T) {
	snapshot := []*domain.Movie{ranked("a", 1), ranked("deck", domain.PriorityOnDeck)}

	muts, err := PlanMarkDone(snapshot, "deck")
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Nil(t, muts[0].Priority)
}

func TestPlanMarkDone_UnrankedJustClears(t *testing.T) {
	snapshot := []*domain.Movie{unranked("x"), ranked("a", 1)}

	muts, err := PlanMarkDone(snapshot, "x")
	require.NoError(t, err)
	require.Len(t, muts, 1)
	assert.Nil(t, muts[0].Priority)
}

func TestPlanMarkDone_WatchingPromotesNextRank(t *testing.T) {
	snapshot := []*domain.Movie{ranked("w", 0), ranked("a", 1), ranked("b", 2)}

	muts, err := PlanMarkDone(snapshot, "w")
	require.NoError(t, err)

	a := mutationByID(muts, "a")
	require.NotNil(t, a)
	assert.Equal(t, 0, *a.Priority, "decrement floors at the watching sentinel")
	b := mutationByID(muts, "b")
	require.NotNil(t, b)
	assert.Equal(t, 1, *b.Priority)
}
