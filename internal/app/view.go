// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

const title = "Range sliders"

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	s := styles.T().S()
	header := render.Fit(styles.ApplyGradient(title, styles.T().Primary, styles.T().Secondary), m.Width)

	body := m.renderSliders()
	if m.ShowHelp {
		body = m.renderFullHelp()
	}
	bodyHeight := max(m.Height-headerHeight-footerHeight, 0)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	status := s.Muted.Render(render.Truncate(m.StatusMsg, m.Width))
	if m.ErrorMsg != "" {
		status = s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}

	return strings.Join([]string{
		header,
		body,
		status,
		m.Help.ShortHelpView(m.shortHelp()),
	}, "\n")
}

// renderSliders lays panels out to match the origins set by layout.
func (m Model) renderSliders() string {
	var column, verticals []string
	for i, sl := range m.Sliders {
		w, h := sl.Size()
		panel := styles.PanelStyle(i == m.Focus).
			Width(w).
			Height(h).
			Render(sl.View())
		if sl.Orientation() == slider.Vertical {
			verticals = append(verticals, panel)
		} else {
			column = append(column, panel)
		}
	}

	blocks := make([]string, 0, len(verticals)+1)
	if len(column) > 0 {
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, column...))
	}
	blocks = append(blocks, verticals...)
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (m Model) shortHelp() []key.Binding {
	bindings := keymap.HelpBindings(keymap.ByContext("global"))
	return append(bindings, keymap.HelpBindings(keymap.ByContext("slider"))...)
}

func (m Model) renderFullHelp() string {
	return m.Help.FullHelpView([][]key.Binding{
		keymap.HelpBindings(keymap.ByContext("global")),
		keymap.HelpBindings(keymap.ByContext("slider")),
	})
}
