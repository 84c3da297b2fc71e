package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/csandor/daybook/internal/domain"
)

// movieColumns is the canonical SELECT column list for movies.
const movieColumns = `id, title, year, priority, status, notes, created_at, updated_at, watched_at`

// SQLiteMovieRepo implements MovieRepo using a SQLite database.
type SQLiteMovieRepo struct {
	db *sql.DB
}

// NewSQLiteMovieRepo creates a new SQLiteMovieRepo.
func NewSQLiteMovieRepo(db *sql.DB) *SQLiteMovieRepo {
	return &SQLiteMovieRepo{db: db}
}

func (r *SQLiteMovieRepo) Create(ctx context.Context, m *domain.Movie) error {
	query := `INSERT INTO movies (` + movieColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Title,
		m.Year,
		nullableIntToValue(m.Priority),
		string(m.Status),
		m.Notes,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(m.WatchedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting movie: %w", err)
	}
	return nil
}

func (r *SQLiteMovieRepo) GetByID(ctx context.Context, id string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanMovie(row)
}

func (r *SQLiteMovieRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id LIKE ? || '%' LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("resolving movie prefix: %w", err)
	}
	defer rows.Close()

	movies, err := r.scanMovies(rows)
	if err != nil {
		return nil, err
	}
	switch len(movies) {
	case 0:
		return nil, fmt.Errorf("movie %q: %w", prefix, ErrNotFound)
	case 1:
		return movies[0], nil
	default:
		return nil, fmt.Errorf("movie prefix %q is ambiguous", prefix)
	}
}

func (r *SQLiteMovieRepo) ListBacklog(ctx context.Context) ([]*domain.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies
		WHERE status = 'backlog'
		ORDER BY priority IS NULL, priority, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing movie backlog: %w", err)
	}
	defer rows.Close()
	return r.scanMovies(rows)
}

func (r *SQLiteMovieRepo) Update(ctx context.Context, m *domain.Movie) error {
	query := `UPDATE movies SET title = ?, year = ?, priority = ?, status = ?, notes = ?,
		updated_at = ?, watched_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.Title,
		m.Year,
		nullableIntToValue(m.Priority),
		string(m.Status),
		m.Notes,
		m.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(m.WatchedAt, time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating movie: %w", err)
	}
	return nil
}

func (r *SQLiteMovieRepo) SetPriority(ctx context.Context, id string, priority *int) error {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE movies SET priority = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, nullableIntToValue(priority), now, id)
	if err != nil {
		return fmt.Errorf("setting movie priority: %w", err)
	}
	return nil
}

func (r *SQLiteMovieRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM movies WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting movie: %w", err)
	}
	return nil
}

// scanMovie scans a single movie from a *sql.Row.
func (r *SQLiteMovieRepo) scanMovie(row *sql.Row) (*domain.Movie, error) {
	var m domain.Movie
	var statusStr string
	var priority sql.NullInt64
	var watchedAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&m.ID, &m.Title, &m.Year, &priority, &statusStr, &m.Notes,
		&createdAtStr, &updatedAtStr, &watchedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("movie: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning movie: %w", err)
	}

	return r.populateMovie(&m, statusStr, priority, watchedAtStr, createdAtStr, updatedAtStr)
}

// scanMovies scans multiple movies from *sql.Rows.
func (r *SQLiteMovieRepo) scanMovies(rows *sql.Rows) ([]*domain.Movie, error) {
	var movies []*domain.Movie
	for rows.Next() {
		var m domain.Movie
		var statusStr string
		var priority sql.NullInt64
		var watchedAtStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&m.ID, &m.Title, &m.Year, &priority, &statusStr, &m.Notes,
			&createdAtStr, &updatedAtStr, &watchedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning movie row: %w", err)
		}

		movie, err := r.populateMovie(&m, statusStr, priority, watchedAtStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movies: %w", err)
	}
	return movies, nil
}

// populateMovie fills in parsed fields on a Movie after scanning raw values.
func (r *SQLiteMovieRepo) populateMovie(
	m *domain.Movie,
	statusStr string,
	priority sql.NullInt64,
	watchedAtStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Movie, error) {
	m.Status = domain.MovieStatus(statusStr)
	m.Priority = parseNullableInt(priority)
	m.WatchedAt = parseNullableTime(watchedAtStr, time.RFC3339)

	var parseErr error
	m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	m.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return m, nil
}
