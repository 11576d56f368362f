package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
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

// SpendColor returns the style for a budget line's spend level.
func SpendColor(level domain.SpendLevel) lipgloss.Style {
	switch level {
	case domain.SpendCritical:
		return StyleRed
	case domain.SpendWarning:
		return StyleYellow
	case domain.SpendOK:
		return StyleGreen
	default:
		return StyleDim
	}
}

// SpendIndicator returns a colored level marker such as "● WARNING".
func SpendIndicator(level domain.SpendLevel) string {
	switch level {
	case domain.SpendCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.SpendWarning:
		return StyleYellow.Render("● WARNING")
	case domain.SpendOK:
		return StyleGreen.Render("● OK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// StatusPill returns a colored indicator for an activity status.
func StatusPill(status domain.ActivityStatus) string {
	switch status {
	case domain.StatusPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.StatusBooked:
		return StyleYellow.Render("● Booked")
	case domain.StatusConfirmed:
		return StyleGreen.Render("✔ Confirmed")
	case domain.StatusCancelled:
		return StyleDim.Render("✖ Cancelled")
	default:
		return StyleDim.Render(string(status))
	}
}

// CrowdBadge renders a crowd level; high crowds are highlighted.
func CrowdBadge(level domain.CrowdLevel) string {
	switch level {
	case domain.CrowdHigh:
		return StyleRed.Render("high")
	case domain.CrowdMedium:
		return StyleYellow.Render("medium")
	default:
		return StyleDim.Render(string(level))
	}
}

// DifficultyBadge colors a savings tip's difficulty from green to red.
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyHard:
		return StyleRed.Render(string(d))
	case domain.DifficultyMedium:
		return StyleYellow.Render(string(d))
	default:
		return StyleGreen.Render(string(d))
	}
}

// CategoryBadge returns a capitalized, purple-styled category label.
func CategoryBadge(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	s := string(c)
	return StylePurple.Render(strings.ToUpper(s[:1]) + s[1:])
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
