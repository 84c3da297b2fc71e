package service

import (
	"context"
	"time"

	"github.com/csandor/daybook/internal/contract"
	"github.com/csandor/daybook/internal/domain"
	"github.com/csandor/daybook/internal/planner"
	"github.com/csandor/daybook/internal/repository"
)

type agendaService struct {
	items repository.ItemRepo
}

func NewAgendaService(items repository.ItemRepo) AgendaService {
	return &agendaService{items: items}
}

var bucketLabels = map[planner.Bucket]string{
	planner.BucketThisWeek:    "This week",
	planner.BucketNextWeek:    "Next week",
	planner.BucketThisWeekend: "This weekend",
	planner.BucketNextWeekend: "Next weekend",
	planner.BucketOpen:        "Open",
}

func (s *agendaService) Agenda(ctx context.Context, today time.Time) (*contract.AgendaResponse, error) {
	items, err := s.items.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	today = planner.Date(today)
	windows := planner.ComputeWindows(today)
	classified := planner.Classify(items, today, windows)
	visible := planner.VisibleDays(today)

	// Multi-day plans render once per occupied visible day beyond their
	// pinned day.
	spanning := make(map[string][]*domain.Item)
	for _, item := range items {
		if !item.Spans() {
			continue
		}
		for _, d := range planner.OccupiedDays(item, visible) {
			if planner.SameDay(d, item.Placement.Day) {
				continue
			}
			key := planner.ISODate(d)
			spanning[key] = append(spanning[key], item)
		}
	}

	resp := &contract.AgendaResponse{Today: planner.ISODate(today)}

	for _, d := range visible {
		key := planner.ISODate(d)
		dayItems := append([]*domain.Item{}, classified.Days[key]...)
		dayItems = append(dayItems, spanning[key]...)
		planner.SortItems(dayItems)

		resp.Days = append(resp.Days, contract.DayView{
			Date:    key,
			Weekday: d.Weekday().String()[:3],
			IsToday: planner.SameDay(d, today),
			Items:   itemViews(dayItems),
		})
	}

	windowStarts := map[planner.Bucket]time.Time{
		planner.BucketThisWeek:    windows.ThisWeekStart,
		planner.BucketNextWeek:    windows.NextWeekStart,
		planner.BucketThisWeekend: windows.ThisWeekendStart,
		planner.BucketNextWeekend: windows.NextWeekendStart,
	}
	for _, b := range planner.DrawerBuckets {
		view := contract.BucketView{
			Key:   string(b),
			Label: bucketLabels[b],
			Items: itemViews(classified.Drawer[b]),
		}
		if start, ok := windowStarts[b]; ok {
			view.Start = planner.ISODate(start)
		}
		resp.Drawer = append(resp.Drawer, view)
	}

	resp.Overdue = itemViews(classified.Overdue)
	for i := range resp.Overdue {
		pinned := planner.Date(classified.Overdue[i].Placement.Day)
		resp.Overdue[i].DaysLate = daysBetween(pinned, today)
	}

	return resp, nil
}

func itemViews(items []*domain.Item) []contract.ItemView {
	views := make([]contract.ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, contract.ItemView{
			ID:       item.ID,
			ShortID:  item.DisplayID(),
			Title:    item.Title,
			Kind:     string(item.Kind),
			Token:    planner.EncodePlacement(item.Placement),
			Spanning: item.Spans(),
		})
	}
	return views
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
