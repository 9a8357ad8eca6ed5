package rangeslider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/render"
	"github.com/llehouerou/rangeslider/internal/ui/styles"
)

const (
	thumbGlyph = "●"
	valueSep   = " – "
)

// View renders the slider. Vertical sliders put max at the top.
func (m Model) View() string {
	if m.Width() <= 0 || m.Height() <= 0 {
		return ""
	}
	if m.Orientation() == slider.Vertical {
		return m.viewVertical()
	}
	return m.viewHorizontal()
}

func (m Model) viewHorizontal() string {
	w := m.Width()
	label := m.labelStyle().Render(render.Truncate(m.label, max(w/2, 1)))
	header := render.Fit(render.Row(label, m.valueText(), w), w)
	return header + "\n" + strings.Join(m.trackCells(), "")
}

func (m Model) viewVertical() string {
	w := m.Width()
	cells := m.trackCells()

	lines := make([]string, 0, len(cells)+2)
	lines = append(lines, m.labelStyle().Render(render.Truncate(m.label, w)))
	for i := len(cells) - 1; i >= 0; i-- {
		lines = append(lines, cells[i])
	}
	lines = append(lines, render.Fit(m.valueText(), w))
	return strings.Join(lines, "\n")
}

func (m Model) labelStyle() lipgloss.Style {
	s := styles.T().S()
	if m.ctrl.Disabled() {
		return s.Subtle
	}
	if m.IsFocused() {
		return s.Focused
	}
	return s.Title
}

// valueText renders "lower – upper" with the controller's value text.
func (m Model) valueText() string {
	s := styles.T().S()
	text := m.ValueText()
	if m.ctrl.Disabled() {
		return s.Subtle.Render(text)
	}
	return s.Base.Render(text)
}

// trackCells renders one string per track cell, ordered from min to max.
func (m Model) trackCells() []string {
	n := m.trackLen()
	if n == 0 {
		return nil
	}

	rail, fill := "─", "━"
	if m.Orientation() == slider.Vertical {
		rail, fill = "│", "┃"
	}

	t := styles.T()
	s := t.S()
	disabled := m.ctrl.Disabled()
	c0, c1 := m.thumbCell(0), m.thumbCell(1)
	gradient := styles.GradientColors(c1-c0-1, t.Primary, t.Secondary)

	cells := make([]string, n)
	for i := range n {
		switch {
		case i == c0 && i == c1:
			cells[i] = m.thumbStyle(m.stackedThumb()).Render(thumbGlyph)
		case i == c0:
			cells[i] = m.thumbStyle(0).Render(thumbGlyph)
		case i == c1:
			cells[i] = m.thumbStyle(1).Render(thumbGlyph)
		case i > c0 && i < c1 && !disabled:
			cells[i] = lipgloss.NewStyle().Foreground(gradient[i-c0-1]).Render(fill)
		case i > c0 && i < c1:
			cells[i] = s.Subtle.Render(fill)
		case disabled:
			cells[i] = s.Subtle.Render(rail)
		default:
			cells[i] = s.Rail.Render(rail)
		}
	}
	return cells
}

func (m Model) thumbStyle(i int) lipgloss.Style {
	s := styles.T().S()
	if m.ctrl.Disabled() {
		return s.Subtle
	}
	if d, ok := m.ctrl.Dragging(); ok && d == i {
		return s.Dragging
	}
	if f, ok := m.FocusedThumb(); ok && f == i {
		return s.Focused
	}
	return s.Thumb
}
