package planner

import (
	"sort"
	"time"

	"github.com/csandor/daybook/internal/domain"
)

// Bucket names the drawer groupings below the 7-day board.
type Bucket string

const (
	BucketThisWeek    Bucket = "this_week"
	BucketNextWeek    Bucket = "next_week"
	BucketThisWeekend Bucket = "this_weekend"
	BucketNextWeekend Bucket = "next_weekend"
	BucketOpen        Bucket = "open"
)

// DrawerBuckets is the display order of the drawer.
var DrawerBuckets = []Bucket{
	BucketThisWeek, BucketThisWeekend, BucketNextWeek, BucketNextWeekend, BucketOpen,
}

// VisibleDayCount is the length of the rolling day board.
const VisibleDayCount = 7

// Classification is the board-ready grouping of a set of items.
type Classification struct {
	// Days maps each visible day (ISO date key) to the items pinned there.
	Days map[string][]*domain.Item
	// Drawer maps each named window, plus the open bucket, to its items.
	Drawer map[Bucket][]*domain.Item
	// Overdue holds day-pinned items whose day has already passed.
	Overdue []*domain.Item
}

// VisibleDays returns the 7-day range [today .. today+6].
func VisibleDays(today time.Time) []time.Time {
	today = Date(today)
	days := make([]time.Time, VisibleDayCount)
	for i := range days {
		days[i] = AddDays(today, i)
	}
	return days
}

// Classify sorts items into day buckets, drawer buckets, and the
// overdue list. Callers are expected to pass open items only; overdue
// is meaningless for completed work.
//
// A day-pinned item outside the visible range still shows in a drawer
// bucket when its day falls inside that window's span. A window-parked
// item shows only when its (kind, start) exactly matches one of the
// four computed windows; a stale pairing from a previous period is
// orphaned and deliberately shown nowhere until the windows roll
// forward to match it again.
func Classify(items []*domain.Item, today time.Time, w Windows) Classification {
	today = Date(today)
	lastVisible := AddDays(today, VisibleDayCount-1)

	c := Classification{
		Days:   make(map[string][]*domain.Item),
		Drawer: make(map[Bucket][]*domain.Item),
	}
	for _, d := range VisibleDays(today) {
		c.Days[ISODate(d)] = nil
	}
	for _, b := range DrawerBuckets {
		c.Drawer[b] = nil
	}

	for _, item := range items {
		p := item.Placement
		switch {
		case p.IsDay():
			d := Date(p.Day)
			switch {
			case d.Before(today):
				c.Overdue = append(c.Overdue, item)
			case !d.After(lastVisible):
				key := ISODate(d)
				c.Days[key] = append(c.Days[key], item)
			default:
				if b, ok := bucketForDay(d, w); ok {
					c.Drawer[b] = append(c.Drawer[b], item)
				}
				// Beyond every window: owned by its day, shown once
				// that day scrolls into range.
			}
		case p.IsWindow():
			if b, ok := bucketForWindow(p.WindowKind, Date(p.WindowStart), w); ok {
				c.Drawer[b] = append(c.Drawer[b], item)
			}
			// Stale window: orphaned, nowhere.
		default:
			c.Drawer[BucketOpen] = append(c.Drawer[BucketOpen], item)
		}
	}

	for key := range c.Days {
		SortItems(c.Days[key])
	}
	for b := range c.Drawer {
		SortItems(c.Drawer[b])
	}
	SortItems(c.Overdue)
	return c
}

// bucketForDay finds the drawer bucket whose window span contains d.
func bucketForDay(d time.Time, w Windows) (Bucket, bool) {
	spans := []struct {
		bucket Bucket
		kind   domain.WindowKind
		start  time.Time
	}{
		{BucketThisWeek, domain.WindowWorkweek, w.ThisWeekStart},
		{BucketNextWeek, domain.WindowWorkweek, w.NextWeekStart},
		{BucketThisWeekend, domain.WindowWeekend, w.ThisWeekendStart},
		{BucketNextWeekend, domain.WindowWeekend, w.NextWeekendStart},
	}
	for _, s := range spans {
		lo, hi := windowSpan(s.kind, s.start)
		if !d.Before(lo) && !d.After(hi) {
			return s.bucket, true
		}
	}
	return "", false
}

// bucketForWindow matches a stored (kind, start) pair against the four
// computed window identities.
func bucketForWindow(kind domain.WindowKind, start time.Time, w Windows) (Bucket, bool) {
	switch {
	case kind == domain.WindowWorkweek && start.Equal(w.ThisWeekStart):
		return BucketThisWeek, true
	case kind == domain.WindowWorkweek && start.Equal(w.NextWeekStart):
		return BucketNextWeek, true
	case kind == domain.WindowWeekend && start.Equal(w.ThisWeekendStart):
		return BucketThisWeekend, true
	case kind == domain.WindowWeekend && start.Equal(w.NextWeekendStart):
		return BucketNextWeekend, true
	}
	return "", false
}

// maxSentinel sorts undated items after every dated one.
var maxSentinel = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// effectiveDate is the sort key within a bucket: the pinned day, the
// window start, or the maximal sentinel for fully unplaced items.
func effectiveDate(item *domain.Item) time.Time {
	switch {
	case item.Placement.IsDay():
		return Date(item.Placement.Day)
	case item.Placement.IsWindow():
		return Date(item.Placement.WindowStart)
	default:
		return maxSentinel
	}
}

// SortItems orders a bucket in place: ascending effective date, then
// ascending creation time.
func SortItems(items []*domain.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := effectiveDate(items[i]), effectiveDate(items[j])
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
