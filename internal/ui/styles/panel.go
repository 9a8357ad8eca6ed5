package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered panel style for a slider, highlighted when
// one of its thumbs has focus.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
