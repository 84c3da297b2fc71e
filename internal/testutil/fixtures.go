package testutil

import (
	"time"

	"github.com/csandor/daybook/internal/domain"
	"github.com/google/uuid"
)

// Item options
type ItemOption func(*domain.Item)

func WithKind(k domain.ItemKind) ItemOption {
	return func(i *domain.Item) {
		i.Kind = k
	}
}

func WithPlacement(p domain.Placement) ItemOption {
	return func(i *domain.Item) {
		i.Placement = p
	}
}

func WithEndDate(d time.Time) ItemOption {
	return func(i *domain.Item) {
		i.EndDate = &d
	}
}

func WithCreatedAt(t time.Time) ItemOption {
	return func(i *domain.Item) {
		i.CreatedAt = t
		i.UpdatedAt = t
	}
}

func NewTestItem(title string, opts ...ItemOption) *domain.Item {
	now := time.Now().UTC()
	i := &domain.Item{
		ID:        uuid.New().String(),
		Title:     title,
		Kind:      domain.KindTask,
		Status:    domain.ItemOpen,
		Placement: domain.NoPlacement(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Movie options
type MovieOption func(*domain.Movie)

func WithPriority(p int) MovieOption {
	return func(m *domain.Movie) {
		m.Priority = &p
	}
}

func WithYear(y int) MovieOption {
	return func(m *domain.Movie) {
		m.Year = y
	}
}

func NewTestMovie(title string, opts ...MovieOption) *domain.Movie {
	now := time.Now().UTC()
	m := &domain.Movie{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.MovieBacklog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}
