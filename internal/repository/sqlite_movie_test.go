package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/repository"
	"github.com/csandor/daybook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovieRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMovieRepo(db)
	ctx := context.Background()

	movie := testutil.NewTestMovie("Stalker", testutil.WithYear(1979), testutil.WithPriority(1))
	require.NoError(t, repo.Create(ctx, movie))

	fetched, err := repo.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stalker", fetched.Title)
	assert.Equal(t, 1979, fetched.Year)
	require.NotNil(t, fetched.Priority)
	assert.Equal(t, 1, *fetched.Priority)
	assert.Equal(t, domain.MovieBacklog, fetched.Status)
}

func TestMovieRepo_NilPriorityRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMovieRepo(db)
	ctx := context.Background()

	movie := testutil.NewTestMovie("Unranked")
	require.NoError(t, repo.Create(ctx, movie))

	fetched, err := repo.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Priority)
	assert.False(t, fetched.Ranked())
}

func TestMovieRepo_ListBacklog_QueueOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMovieRepo(db)
	ctx := context.Background()

	watching := testutil.NewTestMovie("Watching", testutil.WithPriority(domain.PriorityWatching))
	first := testutil.NewTestMovie("First", testutil.WithPriority(1))
	second := testutil.NewTestMovie("Second", testutil.WithPriority(2))
	onDeck := testutil.NewTestMovie("OnDeck", testutil.WithPriority(domain.PriorityOnDeck))
	shelved := testutil.NewTestMovie("Shelved")
	for _, m := range []*domain.Movie{shelved, onDeck, second, first, watching} {
		require.NoError(t, repo.Create(ctx, m))
	}

	list, err := repo.ListBacklog(ctx)
	require.NoError(t, err)
	require.Len(t, list, 5)

	// Ranked first in priority order, unranked trailing.
	assert.Equal(t, "Watching", list[0].Title)
	assert.Equal(t, "First", list[1].Title)
	assert.Equal(t, "Second", list[2].Title)
	assert.Equal(t, "OnDeck", list[3].Title)
	assert.Equal(t, "Shelved", list[4].Title)
}

func TestMovieRepo_SetPriority(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMovieRepo(db)
	ctx := context.Background()

	movie := testutil.NewTestMovie("Mover", testutil.WithPriority(3))
	require.NoError(t, repo.Create(ctx, movie))

	two := 2
	require.NoError(t, repo.SetPriority(ctx, movie.ID, &two))
	fetched, err := repo.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.Priority)
	assert.Equal(t, 2, *fetched.Priority)

	require.NoError(t, repo.SetPriority(ctx, movie.ID, nil))
	fetched, err = repo.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched.Priority)
}

func TestMovieRepo_Update_Watched(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMovieRepo(db)
	ctx := context.Background()

	movie := testutil.NewTestMovie("Done", testutil.WithPriority(1))
	require.NoError(t, repo.Create(ctx, movie))

	now := time.Now().UTC()
	movie.Status = domain.MovieWatched
	movie.Priority = nil
	movie.WatchedAt = &now
	movie.UpdatedAt = now
	require.NoError(t, repo.Update(ctx, movie))

	list, err := repo.ListBacklog(ctx)
	require.NoError(t, err)
	assert.Empty(t, list, "watched movies leave the backlog")
}

func TestMovieRepo_GetByPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteMovieRepo(db)
	ctx := context.Background()

	movie := testutil.NewTestMovie("Prefixed")
	require.NoError(t, repo.Create(ctx, movie))

	fetched, err := repo.GetByPrefix(ctx, movie.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, movie.ID, fetched.ID)

	_, err = repo.GetByPrefix(ctx, "zzzzzzzz")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
