package planner

import (
	"strings"
	"time"

	"github.com/csandor/daybook/internal/domain"
)

// Defaults seeds the quick-add parser: the placement and kind an item
// gets when the text carries no directive for that category.
type Defaults struct {
	Placement domain.Placement
	Kind      domain.ItemKind
	Today     time.Time
	Windows   Windows
}

// ParseResult is the outcome of scanning a quick-add line.
type ParseResult struct {
	Title     string
	Placement domain.Placement
	Kind      domain.ItemKind
}

var weekdayNames = map[string]time.Weekday{
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "weds": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
	"sun": time.Sunday, "sunday": time.Sunday,
}

var kindTags = map[string]domain.ItemKind{
	"task": domain.KindTask, "tasks": domain.KindTask,
	"plan": domain.KindPlan, "plans": domain.KindPlan,
	"focus": domain.KindFocus, "focuses": domain.KindFocus,
}

// ParseQuickAdd scans free-form quick-add text for #-prefixed
// directives and folds them left to right into the defaults. Within a
// category the last directive wins; everything the scanner cannot
// classify, # prefixed or not, stays in the title verbatim. The
// returned title is whitespace-normalized and may be empty, in which
// case the caller must reject the add.
func ParseQuickAdd(raw string, defaults Defaults) ParseResult {
	res := ParseResult{
		Title:     "",
		Placement: defaults.Placement,
		Kind:      defaults.Kind,
	}
	today := Date(defaults.Today)
	w := defaults.Windows

	var kept []string
	for _, tok := range strings.Fields(raw) {
		if !strings.HasPrefix(tok, "#") || len(tok) < 2 {
			kept = append(kept, tok)
			continue
		}
		tag := normalizeTag(tok[1:])

		if kind, ok := kindTags[tag]; ok {
			res.Kind = kind
			continue
		}
		if placement, ok := placementForTag(tag, today, w); ok {
			res.Placement = placement
			continue
		}
		kept = append(kept, tok)
	}

	res.Title = strings.Join(kept, " ")
	return res
}

// ParseTarget resolves a move destination given on the command line: a
// wire token ("none", "D|...", "P|..."), a bare ISO date, or a
// placement directive with or without its leading "#". Returns false
// for anything unrecognized.
func ParseTarget(s string, today time.Time, w Windows) (domain.Placement, bool) {
	if p, ok := DecodePlacement(s); ok {
		return p, ok
	}
	if d, err := ParseISODate(s); err == nil {
		return domain.DayPlacement(d), true
	}
	return placementForTag(normalizeTag(strings.TrimPrefix(s, "#")), Date(today), w)
}

// normalizeTag lowercases a tag and strips every non-letter, so
// "#ThisWeek!" and "#thisweek" match the same directive.
func normalizeTag(tag string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(tag) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func placementForTag(tag string, today time.Time, w Windows) (domain.Placement, bool) {
	switch tag {
	case "today":
		return domain.DayPlacement(today), true
	case "tomorrow":
		return domain.DayPlacement(AddDays(today, 1)), true
	case "thisweek", "week":
		return domain.WindowPlacement(domain.WindowWorkweek, w.ThisWeekStart), true
	case "thisweekend", "weekend":
		return domain.WindowPlacement(domain.WindowWeekend, w.ThisWeekendStart), true
	case "nextweek":
		return domain.WindowPlacement(domain.WindowWorkweek, w.NextWeekStart), true
	case "nextweekend":
		return domain.WindowPlacement(domain.WindowWeekend, w.NextWeekendStart), true
	case "nodate", "someday", "later":
		return domain.NoPlacement(), true
	}
	if wd, ok := weekdayNames[tag]; ok {
		return domain.DayPlacement(NextWeekdayAfter(today, wd)), true
	}
	return domain.Placement{}, false
}
