package service

import (
	"context"
	"fmt"
	"time"

	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/planner"
	"github.com/csandor/daybook/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items repository.ItemRepo
}

func NewItemService(items repository.ItemRepo) ItemService {
	return &itemService{items: items}
}

func (s *itemService) QuickAdd(ctx context.Context, raw string, today time.Time, defaultKind domain.ItemKind) (*domain.Item, error) {
	if defaultKind == "" {
		defaultKind = domain.KindTask
	}
	res := planner.ParseQuickAdd(raw, planner.Defaults{
		Placement: domain.NoPlacement(),
		Kind:      defaultKind,
		Today:     today,
		Windows:   planner.ComputeWindows(today),
	})
	if res.Title == "" {
		return nil, ErrEmptyTitle
	}

	now := time.Now().UTC()
	item := &domain.Item{
		ID:        uuid.New().String(),
		Title:     res.Title,
		Kind:      res.Kind,
		Status:    domain.ItemOpen,
		Placement: res.Placement,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, idOrPrefix string) (*domain.Item, error) {
	return s.items.GetByPrefix(ctx, idOrPrefix)
}

// Move applies the new placement optimistically: the item is mutated,
// the update issued, and on failure the precomputed inverse patch
// restores the previous placement before the error is surfaced.
func (s *itemService) Move(ctx context.Context, idOrPrefix, target string, today time.Time) (*domain.Item, bool, error) {
	item, err := s.items.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, false, err
	}

	placement, ok := planner.ParseTarget(target, today, planner.ComputeWindows(today))
	if !ok {
		// Separator rows and typos are a no-op, not a placement.
		return item, false, nil
	}
	if item.Placement.Equal(placement) {
		return item, false, nil
	}

	prevPlacement := item.Placement
	prevUpdated := item.UpdatedAt

	item.Placement = placement
	item.UpdatedAt = time.Now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		item.Placement = prevPlacement
		item.UpdatedAt = prevUpdated
		return item, false, fmt.Errorf("moving item: %w", err)
	}
	return item, true, nil
}

func (s *itemService) SetEndDate(ctx context.Context, idOrPrefix string, end *time.Time) (*domain.Item, error) {
	item, err := s.items.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	if item.Kind != domain.KindPlan {
		return nil, fmt.Errorf("only plans take an end date, %q is a %s", item.Title, item.Kind)
	}

	prevEnd := item.EndDate
	prevUpdated := item.UpdatedAt

	item.EndDate = end
	item.UpdatedAt = time.Now().UTC()
	if err := s.items.Update(ctx, item); err != nil {
		item.EndDate = prevEnd
		item.UpdatedAt = prevUpdated
		return item, fmt.Errorf("setting end date: %w", err)
	}
	return item, nil
}

func (s *itemService) MarkDone(ctx context.Context, idOrPrefix string) error {
	item, err := s.items.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	item.Status = domain.ItemDone
	item.CompletedAt = &now
	item.UpdatedAt = now
	return s.items.Update(ctx, item)
}

func (s *itemService) Delete(ctx context.Context, idOrPrefix string) error {
	item, err := s.items.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	return s.items.Delete(ctx, item.ID)
}

func (s *itemService) ListOpen(ctx context.Context) ([]*domain.Item, error) {
	return s.items.ListOpen(ctx)
}
