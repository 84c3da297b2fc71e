package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/csandor/daybook/internal/contract"
	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/queue"
	"github.com/csandor/daybook/internal/repository"
	"github.com/google/uuid"
)

type movieService struct {
	movies repository.MovieRepo
}

func NewMovieService(movies repository.MovieRepo) MovieService {
	return &movieService{movies: movies}
}

func (s *movieService) Add(ctx context.Context, title string, year int) (*domain.Movie, error) {
	now := time.Now().UTC()
	movie := &domain.Movie{
		ID:        uuid.New().String(),
		Title:     title,
		Year:      year,
		Status:    domain.MovieBacklog,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Queue(ctx context.Context) (*contract.QueueResponse, error) {
	snapshot, err := s.movies.ListBacklog(ctx)
	if err != nil {
		return nil, err
	}
	return buildQueueResponse(snapshot), nil
}

// Move plans the rank change and persists its mutations in plan order.
// The snapshot is not trusted after a failed write: the whole queue is
// re-read from the store and handed back with the error.
func (s *movieService) Move(ctx context.Context, idOrPrefix string, dir queue.Direction) (*contract.QueueResponse, error) {
	movie, err := s.movies.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.movies.ListBacklog(ctx)
	if err != nil {
		return nil, err
	}

	muts, err := queue.PlanMove(snapshot, movie.ID, dir)
	if err != nil {
		return nil, err
	}
	if err := s.applyMutations(ctx, snapshot, muts); err != nil {
		return s.reload(ctx, err)
	}
	return buildQueueResponse(snapshot), nil
}

func (s *movieService) MarkWatched(ctx context.Context, idOrPrefix string) (*contract.QueueResponse, error) {
	movie, err := s.movies.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.movies.ListBacklog(ctx)
	if err != nil {
		return nil, err
	}

	muts, err := queue.PlanMarkDone(snapshot, movie.ID)
	if err != nil {
		return nil, err
	}
	if err := s.applyMutations(ctx, snapshot, muts); err != nil {
		return s.reload(ctx, err)
	}

	now := time.Now().UTC()
	movie.Status = domain.MovieWatched
	movie.Priority = nil
	movie.WatchedAt = &now
	movie.UpdatedAt = now
	if err := s.movies.Update(ctx, movie); err != nil {
		return s.reload(ctx, fmt.Errorf("marking movie watched: %w", err))
	}

	resp, err := s.Queue(ctx)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *movieService) Promote(ctx context.Context, idOrPrefix string) error {
	movie, err := s.movies.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	if movie.Ranked() {
		return fmt.Errorf("%q is already in the queue", movie.Title)
	}
	onDeck := domain.PriorityOnDeck
	return s.movies.SetPriority(ctx, movie.ID, &onDeck)
}

func (s *movieService) Shelve(ctx context.Context, idOrPrefix string) error {
	movie, err := s.movies.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	return s.movies.SetPriority(ctx, movie.ID, nil)
}

func (s *movieService) Watch(ctx context.Context, idOrPrefix string) error {
	movie, err := s.movies.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	snapshot, err := s.movies.ListBacklog(ctx)
	if err != nil {
		return err
	}
	for _, m := range snapshot {
		if m.ID != movie.ID && m.Priority != nil && *m.Priority == domain.PriorityWatching {
			return fmt.Errorf("already watching %q", m.Title)
		}
	}
	watching := domain.PriorityWatching
	return s.movies.SetPriority(ctx, movie.ID, &watching)
}

func (s *movieService) Remove(ctx context.Context, idOrPrefix string) error {
	movie, err := s.movies.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	return s.movies.Delete(ctx, movie.ID)
}

// ExportCSV writes the active queue in display order.
func (s *movieService) ExportCSV(ctx context.Context, w io.Writer) error {
	snapshot, err := s.movies.ListBacklog(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"priority", "title", "year"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, m := range snapshot {
		if m.Priority == nil {
			continue
		}
		rec := []string{strconv.Itoa(*m.Priority), m.Title, ""}
		if m.Year != 0 {
			rec[2] = strconv.Itoa(m.Year)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// applyMutations persists planned priority changes one call at a time,
// in the order the plan demands. The snapshot is patched as each write
// lands so a fully applied plan needs no re-read.
func (s *movieService) applyMutations(ctx context.Context, snapshot []*domain.Movie, muts []queue.Mutation) error {
	for _, mut := range muts {
		if err := s.movies.SetPriority(ctx, mut.ID, mut.Priority); err != nil {
			return fmt.Errorf("applying rank change: %w", err)
		}
		for _, m := range snapshot {
			if m.ID == mut.ID {
				m.Priority = mut.Priority
				break
			}
		}
	}
	return nil
}

// reload re-reads the queue after a failed multi-write sequence and
// returns it together with the original error.
func (s *movieService) reload(ctx context.Context, cause error) (*contract.QueueResponse, error) {
	snapshot, err := s.movies.ListBacklog(ctx)
	if err != nil {
		return nil, cause
	}
	return buildQueueResponse(snapshot), cause
}

func buildQueueResponse(snapshot []*domain.Movie) *contract.QueueResponse {
	resp := &contract.QueueResponse{}
	snapshot = append([]*domain.Movie{}, snapshot...)
	sort.SliceStable(snapshot, func(i, j int) bool {
		pi, pj := snapshot[i].Priority, snapshot[j].Priority
		if (pi == nil) != (pj == nil) {
			return pi != nil
		}
		if pi != nil && *pi != *pj {
			return *pi < *pj
		}
		return snapshot[i].CreatedAt.Before(snapshot[j].CreatedAt)
	})
	for _, m := range snapshot {
		view := contract.MovieView{
			ID:       m.ID,
			ShortID:  m.DisplayID(),
			Title:    m.Title,
			Year:     m.Year,
			Priority: m.Priority,
		}
		switch {
		case m.Priority == nil:
			resp.Shelved = append(resp.Shelved, view)
		case *m.Priority == domain.PriorityWatching:
			resp.Watching = append(resp.Watching, view)
		case *m.Priority == domain.PriorityOnDeck:
			resp.OnDeck = append(resp.OnDeck, view)
		default:
			resp.Ranked = append(resp.Ranked, view)
		}
	}
	return resp
}
