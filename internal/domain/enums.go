package domain

type ItemKind string

const (
	KindTask  ItemKind = "task"
	KindPlan  ItemKind = "plan"
	KindFocus ItemKind = "focus"
)

// ValidItemKinds is the canonical set of accepted item kind strings.
var ValidItemKinds = map[string]bool{
	"task": true, "plan": true, "focus": true,
}

type ItemStatus string

const (
	ItemOpen ItemStatus = "open"
	ItemDone ItemStatus = "done"
)

type WindowKind string

const (
	WindowWorkweek WindowKind = "workweek"
	WindowWeekend  WindowKind = "weekend"
)

type MovieStatus string

const (
	MovieBacklog MovieStatus = "backlog"
	MovieWatched MovieStatus = "watched"
)
