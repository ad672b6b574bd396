package tabline

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorSelected  = "170" // Purple/magenta for the selected entry
	ColorNormal    = "245" // Light gray for unselected entries
	ColorGhost     = "241" // Dim gray for the transient ghost entry
	ColorSeparator = "238" // Darker gray for separators
	ColorBadge     = "236" // Background for the selected entry
)

// Strip styles
var (
	SelectedTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSelected)).
				Background(lipgloss.Color(ColorBadge)).
				Bold(true)

	TabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	GhostTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGhost)).
			Italic(true)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSeparator))
)

// GetIconStyle returns the style for an icon glyph given the entry state
// and the provider-supplied color.
func GetIconStyle(color string, selected bool) lipgloss.Style {
	if color == "" {
		if selected {
			return SelectedTabStyle
		}
		return TabStyle
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	if selected {
		style = style.Background(lipgloss.Color(ColorBadge))
	}
	return style
}
