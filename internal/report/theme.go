package report

import "charm.land/lipgloss/v2"

// Palette
var (
	primary   = lipgloss.Color("#8B5CF6") // Purple
	success   = lipgloss.Color("#22C55E") // Green
	warning   = lipgloss.Color("#F97316") // Orange
	danger    = lipgloss.Color("#F43F5E") // Rose
	textMuted = lipgloss.Color("#94A3B8") // Slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primary)

	labelStyle = lipgloss.NewStyle().
			Foreground(textMuted)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	passStyle = lipgloss.NewStyle().
			Foreground(success).
			Bold(true)

	failStyle = lipgloss.NewStyle().
			Foreground(danger).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(warning)
)

// statusStyle colors the four-tier operation labels.
func statusStyle(s string) lipgloss.Style {
	switch s {
	case "EXCELENTE", "BUENO":
		return passStyle
	case "REGULAR":
		return warnStyle.Bold(true)
	default:
		return failStyle
	}
}
