package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/csandor/daybook/internal/contract"
	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/queue"
)

// ErrEmptyTitle is returned when a quick-add line contains nothing but
// directives. Items without a title are never created.
var ErrEmptyTitle = errors.New("title is empty")

type ItemService interface {
	// QuickAdd parses a quick-add line and creates the item.
	QuickAdd(ctx context.Context, raw string, today time.Time, defaultKind domain.ItemKind) (*domain.Item, error)
	Get(ctx context.Context, idOrPrefix string) (*domain.Item, error)
	// Move re-places an item. The target is a wire token, an ISO date,
	// or a placement directive; an unrecognized target is a no-op and
	// the returned bool is false.
	Move(ctx context.Context, idOrPrefix, target string, today time.Time) (*domain.Item, bool, error)
	SetEndDate(ctx context.Context, idOrPrefix string, end *time.Time) (*domain.Item, error)
	MarkDone(ctx context.Context, idOrPrefix string) error
	Delete(ctx context.Context, idOrPrefix string) error
	ListOpen(ctx context.Context) ([]*domain.Item, error)
}

type AgendaService interface {
	Agenda(ctx context.Context, today time.Time) (*contract.AgendaResponse, error)
}

type MovieService interface {
	Add(ctx context.Context, title string, year int) (*domain.Movie, error)
	Queue(ctx context.Context) (*contract.QueueResponse, error)
	// Move shifts a movie one step in the queue. On a write failure the
	// queue is re-read from the store and returned alongside the error.
	Move(ctx context.Context, idOrPrefix string, dir queue.Direction) (*contract.QueueResponse, error)
	MarkWatched(ctx context.Context, idOrPrefix string) (*contract.QueueResponse, error)
	// Promote puts an unranked movie into the on-deck area.
	Promote(ctx context.Context, idOrPrefix string) error
	// Shelve removes a movie from the active queue without watching it.
	Shelve(ctx context.Context, idOrPrefix string) error
	// Watch claims the single watching slot for a movie.
	Watch(ctx context.Context, idOrPrefix string) error
	Remove(ctx context.Context, idOrPrefix string) error
	ExportCSV(ctx context.Context, w io.Writer) error
}
