package planner

import (
	"strings"
	"time"

	"github.com/csandor/daybook/internal/domain"
)

// Placement tokens are the wire form used by stored fields and by UI
// controls: "none", "D|<iso>", or "P|<kind>|<iso>". The structured
// domain.Placement exists only inside the process; this codec is the
// single place the string form is produced or consumed.
const (
	tokenNone      = "none"
	tokenDayTag    = "D"
	tokenParkedTag = "P"
	tokenSep       = "|"
)

// EncodePlacement renders a placement as its wire token.
func EncodePlacement(p domain.Placement) string {
	switch {
	case p.IsDay():
		return tokenDayTag + tokenSep + ISODate(p.Day)
	case p.IsWindow():
		return tokenParkedTag + tokenSep + string(p.WindowKind) + tokenSep + ISODate(p.WindowStart)
	default:
		return tokenNone
	}
}

// DecodePlacement parses a wire token. The second return value is false
// for anything that is not a well-formed token — including the disabled
// separator rows a select control can emit — and callers must treat
// that as "no placement change", never as a placement.
func DecodePlacement(token string) (domain.Placement, bool) {
	if token == tokenNone {
		return domain.NoPlacement(), true
	}
	parts := strings.Split(token, tokenSep)
	switch {
	case len(parts) == 2 && parts[0] == tokenDayTag:
		d, err := ParseISODate(parts[1])
		if err != nil {
			return domain.Placement{}, false
		}
		return domain.DayPlacement(d), true
	case len(parts) == 3 && parts[0] == tokenParkedTag:
		kind := domain.WindowKind(parts[1])
		if kind != domain.WindowWorkweek && kind != domain.WindowWeekend {
			return domain.Placement{}, false
		}
		start, err := ParseISODate(parts[2])
		if err != nil {
			return domain.Placement{}, false
		}
		return domain.WindowPlacement(kind, start), true
	default:
		return domain.Placement{}, false
	}
}

// LocationToken builds the wire token for an item's current placement
// from its stored field triplet. A day placement wins over a window if
// both are somehow present; the repository enforces mutual exclusion,
// so this is belt-and-suspenders for old rows.
func LocationToken(scheduledFor *time.Time, windowKind domain.WindowKind, windowStart *time.Time) string {
	if scheduledFor != nil {
		return EncodePlacement(domain.DayPlacement(*scheduledFor))
	}
	if windowKind != "" && windowStart != nil {
		return EncodePlacement(domain.WindowPlacement(windowKind, *windowStart))
	}
	return tokenNone
}
