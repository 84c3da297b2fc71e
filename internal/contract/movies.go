package contract

// MovieView is one movie queue entry.
type MovieView struct {
	ID       string
	ShortID  string
	Title    string
	Year     int
	Priority *int
}

// QueueResponse is the active movie queue in display order: the
// watching slot, the strict ranking, the on-deck area, then the
// unranked shelf.
type QueueResponse struct {
	Watching []MovieView
	Ranked   []MovieView
	OnDeck   []MovieView
	Shelved  []MovieView
}
