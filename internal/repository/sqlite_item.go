package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/csandor/daybook/internal/domain"
)

// itemColumns is the canonical SELECT column list for items.
const itemColumns = `id, title, kind, status, scheduled_for, window_kind, window_start,
		end_date, notes, created_at, updated_at, completed_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db *sql.DB
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(db *sql.DB) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

// placementColumns splits a Placement into the stored field triplet.
// Exactly one of {scheduled_for}, {window_kind + window_start}, or all
// NULL is produced, which the schema CHECKs also enforce.
func placementColumns(p domain.Placement) (scheduledFor, windowKind, windowStart interface{}) {
	switch {
	case p.IsDay():
		return p.Day.Format(dateLayout), nil, nil
	case p.IsWindow():
		return nil, string(p.WindowKind), p.WindowStart.Format(dateLayout)
	default:
		return nil, nil, nil
	}
}

// placementFromColumns rebuilds a Placement from the stored triplet.
// A day wins over a window if an old row somehow carries both.
func placementFromColumns(scheduledFor, windowKind, windowStart sql.NullString) domain.Placement {
	if day := parseNullableTime(scheduledFor, dateLayout); day != nil {
		return domain.DayPlacement(*day)
	}
	start := parseNullableTime(windowStart, dateLayout)
	if windowKind.Valid && windowKind.String != "" && start != nil {
		return domain.WindowPlacement(domain.WindowKind(windowKind.String), *start)
	}
	return domain.NoPlacement()
}

func (r *SQLiteItemRepo) Create(ctx context.Context, i *domain.Item) error {
	scheduledFor, windowKind, windowStart := placementColumns(i.Placement)
	query := `INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		i.ID,
		i.Title,
		string(i.Kind),
		string(i.Status),
		scheduledFor,
		windowKind,
		windowStart,
		nullableTimeToString(i.EndDate, dateLayout),
		i.Notes,
		i.CreatedAt.Format(time.RFC3339),
		i.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(i.CompletedAt, time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanItem(row)
}

func (r *SQLiteItemRepo) GetByPrefix(ctx context.Context, prefix string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id LIKE ? || '%' LIMIT 2`
	rows, err := r.db.QueryContext(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("resolving item prefix: %w", err)
	}
	defer rows.Close()

	items, err := r.scanItems(rows)
	if err != nil {
		return nil, err
	}
	switch len(items) {
	case 0:
		return nil, fmt.Errorf("item %q: %w", prefix, ErrNotFound)
	case 1:
		return items[0], nil
	default:
		return nil, fmt.Errorf("item prefix %q is ambiguous", prefix)
	}
}

func (r *SQLiteItemRepo) ListOpen(ctx context.Context) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status = 'open' ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing open items: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) ListAll(ctx context.Context) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()
	return r.scanItems(rows)
}

func (r *SQLiteItemRepo) Update(ctx context.Context, i *domain.Item) error {
	scheduledFor, windowKind, windowStart := placementColumns(i.Placement)
	query := `UPDATE items SET title = ?, kind = ?, status = ?, scheduled_for = ?,
		window_kind = ?, window_start = ?, end_date = ?, notes = ?,
		updated_at = ?, completed_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		i.Title,
		string(i.Kind),
		string(i.Status),
		scheduledFor,
		windowKind,
		windowStart,
		nullableTimeToString(i.EndDate, dateLayout),
		i.Notes,
		i.UpdatedAt.Format(time.RFC3339),
		nullableTimeToString(i.CompletedAt, time.RFC3339),
		i.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

// scanItem scans a single item from a *sql.Row.
func (r *SQLiteItemRepo) scanItem(row *sql.Row) (*domain.Item, error) {
	var i domain.Item
	var kindStr, statusStr string
	var scheduledForStr, windowKindStr, windowStartStr, endDateStr, completedAtStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&i.ID, &i.Title, &kindStr, &statusStr,
		&scheduledForStr, &windowKindStr, &windowStartStr,
		&endDateStr, &i.Notes, &createdAtStr, &updatedAtStr, &completedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}

	return r.populateItem(&i, kindStr, statusStr, scheduledForStr, windowKindStr,
		windowStartStr, endDateStr, completedAtStr, createdAtStr, updatedAtStr)
}

// scanItems scans multiple items from *sql.Rows.
func (r *SQLiteItemRepo) scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	var items []*domain.Item
	for rows.Next() {
		var i domain.Item
		var kindStr, statusStr string
		var scheduledForStr, windowKindStr, windowStartStr, endDateStr, completedAtStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&i.ID, &i.Title, &kindStr, &statusStr,
			&scheduledForStr, &windowKindStr, &windowStartStr,
			&endDateStr, &i.Notes, &createdAtStr, &updatedAtStr, &completedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}

		item, err := r.populateItem(&i, kindStr, statusStr, scheduledForStr, windowKindStr,
			windowStartStr, endDateStr, completedAtStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

// populateItem fills in parsed fields on an Item after scanning raw values.
func (r *SQLiteItemRepo) populateItem(
	i *domain.Item,
	kindStr, statusStr string,
	scheduledForStr, windowKindStr, windowStartStr, endDateStr, completedAtStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Item, error) {
	i.Kind = domain.ItemKind(kindStr)
	i.Status = domain.ItemStatus(statusStr)
	i.Placement = placementFromColumns(scheduledForStr, windowKindStr, windowStartStr)
	i.EndDate = parseNullableTime(endDateStr, dateLayout)
	i.CompletedAt = parseNullableTime(completedAtStr, time.RFC3339)

	var parseErr error
	i.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	i.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return i, nil
}
