package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/csandor/daybook/internal/domain"
)

// Everforest-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#a7c080")
	ColorYellow = lipgloss.Color("#dbbc7f")
	ColorRed    = lipgloss.Color("#e67e80")
	ColorBlue   = lipgloss.Color("#7fbbb3")
	ColorPurple = lipgloss.Color("#d699b6")
	ColorDim    = lipgloss.Color("#859289")
	ColorFg     = lipgloss.Color("#d3c6aa")
	ColorHeader = lipgloss.Color("#e69875")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DisableColor replaces every style with an unstyled one, for --plain
// output and for piped stdout.
func DisableColor() {
	plain := lipgloss.NewStyle()
	StyleGreen = plain
	StyleYellow = plain
	StyleRed = plain
	StyleBlue = plain
	StylePurple = plain
	StyleDim = plain
	StyleFg = plain
	StyleHeader = plain
	StyleBold = plain
}

// Header renders a section header with the accent style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// KindBadge returns a colored single-word badge for an item kind.
func KindBadge(kind string) string {
	switch domain.ItemKind(kind) {
	case domain.KindPlan:
		return StyleBlue.Render("plan")
	case domain.KindFocus:
		return StylePurple.Render("focus")
	default:
		return StyleDim.Render("task")
	}
}
