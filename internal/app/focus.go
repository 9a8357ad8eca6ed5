// internal/app/focus.go
package app

import tea "github.com/charmbracelet/bubbletea"

// focusSlider moves focus to slider i at thumb. Blurring the previous slider
// may end its drag, so the returned command can carry a commit.
func (m *Model) focusSlider(i, thumb int) tea.Cmd {
	var cmd tea.Cmd
	if m.Focus != noFocus && m.Focus != i {
		cmd = m.Sliders[m.Focus].Blur()
		m.Focus = noFocus
	}
	if m.Sliders[i].Focus(thumb) {
		m.Focus = i
	}
	return cmd
}

// nextFocusable returns the next focusable slider after from, wrapping
// around, or noFocus if none accepts focus. from may be noFocus.
func (m Model) nextFocusable(from int, forward bool) int {
	n := len(m.Sliders)
	if n == 0 {
		return noFocus
	}
	step := 1
	if !forward {
		step = n - 1
	}
	i := from
	if from == noFocus {
		i = n - 1
		if !forward {
			i = 0
		}
	}
	for range n {
		i = (i + step) % n
		if m.Sliders[i].Focusable() {
			return i
		}
	}
	return noFocus
}

// cycleFocus hands focus to the neighbor of slider from. Moving forward
// lands on the first thumb, moving back on the last one.
func (m *Model) cycleFocus(from int, forward bool) tea.Cmd {
	next := m.nextFocusable(from, forward)
	if next == noFocus {
		return nil
	}
	thumb := 0
	if !forward {
		thumb = 1
	}
	return m.focusSlider(next, thumb)
}
