package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Every statement
// is idempotent so the whole list re-runs on each startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS items (
		id            TEXT PRIMARY KEY,
		title         TEXT NOT NULL,
		kind          TEXT NOT NULL CHECK(kind IN ('task','plan','focus')),
		status        TEXT NOT NULL DEFAULT 'open' CHECK(status IN ('open','done')),
		scheduled_for TEXT,
		window_kind   TEXT CHECK(window_kind IN ('workweek','weekend')),
		window_start  TEXT,
		end_date      TEXT,
		notes         TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		completed_at  TEXT,
		CHECK (scheduled_for IS NULL OR window_kind IS NULL),
		CHECK ((window_kind IS NULL) = (window_start IS NULL))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_status ON items(status)`,
	`CREATE INDEX IF NOT EXISTS idx_items_scheduled_for ON items(scheduled_for)`,
	`CREATE INDEX IF NOT EXISTS idx_items_window ON items(window_kind, window_start)`,

	`CREATE TABLE IF NOT EXISTS movies (
		id         TEXT PRIMARY KEY,
		title      TEXT NOT NULL,
		year       INTEGER NOT NULL DEFAULT 0,
		priority   INTEGER,
		status     TEXT NOT NULL DEFAULT 'backlog' CHECK(status IN ('backlog','watched')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		watched_at TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_priority ON movies(priority)`,
	`CREATE INDEX IF NOT EXISTS idx_movies_status ON movies(status)`,

	`ALTER TABLE movies ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
