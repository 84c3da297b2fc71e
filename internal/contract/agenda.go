// Package contract holds the request/response shapes exchanged between
// services and their callers (CLI commands, the board view). They are
// plain data: no behavior, no repository types.
package contract

// ItemView is one item as shown on the board.
type ItemView struct {
	ID       string // full id
	ShortID  string
	Title    string
	Kind     string
	Token    string // placement wire token, reusable as a move target
	Spanning bool   // rendered on more than one visible day
	DaysLate int    // only set on overdue entries
}

// DayView is one column of the 7-day board.
type DayView struct {
	Date    string // ISO date
	Weekday string // "Mon".."Sun"
	IsToday bool
	Items   []ItemView
}

// BucketView is one drawer section: a named window or the open bucket.
type BucketView struct {
	Key   string // planner bucket key
	Label string // "This week", "Open", ...
	Start string // ISO window start, empty for the open bucket
	Items []ItemView
}

// AgendaResponse is the full board: seven days, the drawer, and the
// overdue list, all derived from one explicit "today".
type AgendaResponse struct {
	Today   string
	Days    []DayView
	Drawer  []BucketView
	Overdue []ItemView
}
