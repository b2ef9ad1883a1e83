package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange for warnings and MINTED/SUSPENDED badges
	ColorDanger   = "196" // Red for destructive actions and REVOKED
	ColorSuccess  = "28"  // Green for ACTIVE
	ColorWhite    = "255" // White
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	TabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWhite)).
			Background(lipgloss.Color(ColorActive)).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	NoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim)).
			Italic(true)

	FooterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDim))
)

// statusStyle returns the badge style for a tag lifecycle state.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "ACTIVE":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	case "REVOKED":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger))
	case "SUSPENDED", "MINTED":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	default:
		return NormalStyle
	}
}
