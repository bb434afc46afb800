package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles for the pager chrome. The grid itself
// is never styled.
type Styles struct {
	Footer lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")), // Gray
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}
