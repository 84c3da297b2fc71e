package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/csandor/daybook/internal/contract"
)

// FormatAgenda renders the full board: overdue entries first, then the
// seven visible days, then the drawer buckets.
func FormatAgenda(resp *contract.AgendaResponse) string {
	var b strings.Builder

	if len(resp.Overdue) > 0 {
		b.WriteString(Header("Overdue"))
		b.WriteString("\n")
		for _, v := range resp.Overdue {
			b.WriteString(fmt.Sprintf("  %s %s  %s  %s\n",
				TruncID(v.ShortID),
				StyleRed.Render(v.Title),
				KindBadge(v.Kind),
				Dim(lateLabel(v.DaysLate)),
			))
		}
		b.WriteString("\n")
	}

	for _, day := range resp.Days {
		b.WriteString(dayHeader(day))
		b.WriteString("\n")
		if len(day.Items) == 0 {
			b.WriteString("  " + Dim("·") + "\n")
		}
		for _, v := range day.Items {
			line := fmt.Sprintf("  %s %s  %s",
				TruncID(v.ShortID),
				StyleFg.Render(v.Title),
				KindBadge(v.Kind),
			)
			if v.Spanning {
				line += "  " + StyleBlue.Render("⋯")
			}
			b.WriteString(line + "\n")
		}
	}

	b.WriteString("\n")
	for _, bucket := range resp.Drawer {
		if len(bucket.Items) == 0 {
			continue
		}
		b.WriteString(Header(bucketHeader(bucket)))
		b.WriteString("\n")
		for _, v := range bucket.Items {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				TruncID(v.ShortID),
				StyleFg.Render(v.Title),
				KindBadge(v.Kind),
			))
		}
	}

	return b.String()
}

func dayHeader(day contract.DayView) string {
	label := day.Weekday
	if t, err := time.Parse("2006-01-02", day.Date); err == nil {
		label = fmt.Sprintf("%s %s", day.Weekday, t.Format("Jan 2"))
	}
	if day.IsToday {
		return StyleHeader.Render(strings.ToUpper(label)) + "  " + StyleGreen.Render("today")
	}
	return StyleBold.Render(label)
}

func bucketHeader(bucket contract.BucketView) string {
	if bucket.Start == "" {
		return bucket.Label
	}
	if t, err := time.Parse("2006-01-02", bucket.Start); err == nil {
		return fmt.Sprintf("%s · %s", bucket.Label, t.Format("Jan 2"))
	}
	return bucket.Label
}

func lateLabel(days int) string {
	if days == 1 {
		return "1 day late"
	}
	return fmt.Sprintf("%d days late", days)
}
