package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesTables(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"items", "movies"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database), "migrations must be idempotent")
	assert.NoError(t, Migrate(database))
}

func TestMigrate_ItemPlacementExclusion(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// A row cannot be both day-pinned and window-parked.
	_, err = database.Exec(`INSERT INTO items
		(id, title, kind, scheduled_for, window_kind, window_start, created_at, updated_at)
		VALUES ('x', 'bad', 'task', '2026-01-05', 'weekend', '2026-01-10',
		        '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_WindowFieldsPaired(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO items
		(id, title, kind, window_kind, created_at, updated_at)
		VALUES ('x', 'bad', 'task', 'weekend',
		        '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "window_kind without window_start must be rejected")
}
