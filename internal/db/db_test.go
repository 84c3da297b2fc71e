package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_FileOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daybook.db")

	database, err := OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	var fk int
	require.NoError(t, database.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)

	var mode string
	require.NoError(t, database.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrate_UpgradesLegacyMoviesTable(t *testing.T) {
	database, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Movies table from before the notes column existed.
	_, err = database.Exec(`CREATE TABLE movies (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		year       INTEGER NOT NULL DEFAULT 0,
		priority   INTEGER,
		status     TEXT NOT NULL DEFAULT 'backlog',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		watched_at TEXT
	)`)
	require.NoError(t, err)

	require.NoError(t, Migrate(database))

	_, err = database.Exec(`INSERT INTO movies (id, title, notes, created_at, updated_at)
		VALUES ('x', 'Stalker', 'rewatch', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.NoError(t, err, "migrated table should have the notes column")
}

func TestMigrate_MovieNotesColumnOnFreshDB(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO movies (id, title, notes, created_at, updated_at)
		VALUES ('x', 'Mirror', '', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}
