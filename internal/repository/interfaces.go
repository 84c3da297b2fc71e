package repository

import (
	"context"
	"errors"

	"github.com/csandor/daybook/internal/domain"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("not found")

type ItemRepo interface {
	Create(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	// GetByPrefix resolves a short (possibly truncated) ID as shown in
	// list output. Ambiguous prefixes are an error.
	GetByPrefix(ctx context.Context, prefix string) (*domain.Item, error)
	ListOpen(ctx context.Context) ([]*domain.Item, error)
	ListAll(ctx context.Context) ([]*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, id string) error
}

type MovieRepo interface {
	Create(ctx context.Context, m *domain.Movie) error
	GetByID(ctx context.Context, id string) (*domain.Movie, error)
	GetByPrefix(ctx context.Context, prefix string) (*domain.Movie, error)
	// ListBacklog returns every movie not yet watched, ranked or not.
	ListBacklog(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, m *domain.Movie) error
	// SetPriority writes only the priority column; nil clears it.
	SetPriority(ctx context.Context, id string, priority *int) error
	Delete(ctx context.Context, id string) error
}
