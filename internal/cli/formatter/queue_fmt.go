package formatter

import (
	"fmt"
	"strings"

	"github.com/csandor/daybook/internal/contract"
)

// FormatQueue renders the movie queue section by section: the watching
// slot, the strict ranking, the on-deck area, then the unranked shelf.
func FormatQueue(resp *contract.QueueResponse) string {
	var b strings.Builder

	if len(resp.Watching) > 0 {
		b.WriteString(Header("Watching"))
		b.WriteString("\n")
		for _, v := range resp.Watching {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleGreen.Render("▶"), movieTitle(v), TruncID(v.ShortID)))
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Up next"))
	b.WriteString("\n")
	if len(resp.Ranked) == 0 {
		b.WriteString("  " + Dim("Nothing ranked yet.") + "\n")
	}
	for _, v := range resp.Ranked {
		rank := "  "
		if v.Priority != nil {
			rank = fmt.Sprintf("%2d", *v.Priority)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			StyleYellow.Render(rank), movieTitle(v), TruncID(v.ShortID)))
	}

	if len(resp.OnDeck) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("On deck"))
		b.WriteString("\n")
		for _, v := range resp.OnDeck {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleBlue.Render("≡"), movieTitle(v), TruncID(v.ShortID)))
		}
	}

	if len(resp.Shelved) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Shelf"))
		b.WriteString("\n")
		for _, v := range resp.Shelved {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				Dim("·"), movieTitle(v), TruncID(v.ShortID)))
		}
	}

	return b.String()
}

func movieTitle(v contract.MovieView) string {
	if v.Year > 0 {
		return StyleFg.Render(v.Title) + " " + Dim(fmt.Sprintf("(%d)", v.Year))
	}
	return StyleFg.Render(v.Title)
}
