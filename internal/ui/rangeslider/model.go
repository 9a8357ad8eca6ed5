// Package rangeslider provides a two-thumb range slider component driven by
// keyboard and mouse.
package rangeslider

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui"
	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/render"
)

// HorizontalHeight is the height of a horizontal slider: a header row with
// the label and values, then the track.
const HorizontalHeight = 2

// Model is a range slider component. It wraps a slider.Controller and turns
// its notifications into action messages.
type Model struct {
	ui.Base
	name     string
	label    string
	ctrl     *slider.Controller
	resolver *keymap.Resolver

	// pending collects controller notifications until Update returns them
	// as commands. Shared across copies of the model, like ctrl.
	pending *[]action.Action
}

// New creates a slider component named name around ctrl. The component
// installs its own handlers on ctrl.
func New(name, label string, ctrl *slider.Controller) Model {
	pending := new([]action.Action)
	ctrl.SetHandlers(slider.Handlers{
		OnValueChange: func(p slider.Pair, i int) {
			*pending = append(*pending, ValueChanged{Name: name, Value: p, Index: i})
		},
		OnValueCommit: func(p slider.Pair) {
			*pending = append(*pending, ValueCommitted{Name: name, Value: p})
		},
	})
	return Model{
		name:     name,
		label:    render.Sanitize(label),
		ctrl:     ctrl,
		resolver: keymap.Default(),
		pending:  pending,
	}
}

// Name returns the slider's identifier.
func (m Model) Name() string { return m.name }

// Label returns the display label.
func (m Model) Label() string { return m.label }

// Value returns the authoritative pair.
func (m Model) Value() slider.Pair { return m.ctrl.Value() }

// Controlled reports whether the host owns the pair.
func (m Model) Controlled() bool { return m.ctrl.Controlled() }

// Sync pushes a host-owned pair into a controlled slider.
func (m Model) Sync(p slider.Pair) bool { return m.ctrl.Sync(p) }

// Focusable reports whether the slider accepts focus.
func (m Model) Focusable() bool { return m.ctrl.Focusable() }

// ValueText returns "lower – upper" as presented to the user.
func (m Model) ValueText() string {
	return m.FormatPair(m.ctrl.Value())
}

// FormatPair renders p the way the slider presents its own value.
func (m Model) FormatPair(p slider.Pair) string {
	return m.ctrl.Text(p.Lower()) + valueSep + m.ctrl.Text(p.Upper())
}

// Orientation returns the slider's orientation.
func (m Model) Orientation() slider.Orientation { return m.ctrl.Config().Orientation }

// FocusedThumb returns the thumb holding keyboard focus, if any.
func (m Model) FocusedThumb() (int, bool) {
	if !m.IsFocused() {
		return 0, false
	}
	return m.ctrl.Focused()
}

// Dragging reports whether a drag session is active.
func (m Model) Dragging() bool {
	_, ok := m.ctrl.Dragging()
	return ok
}

// Focus gives focus to the component and to thumb. Disabled sliders refuse.
func (m *Model) Focus(thumb int) bool {
	if !m.ctrl.Focusable() {
		return false
	}
	m.SetFocused(true)
	m.ctrl.Focus(thumb)
	return true
}

// Blur removes focus. An active drag ends as if capture was lost, so the
// returned command may carry a commit.
func (m *Model) Blur() tea.Cmd {
	m.SetFocused(false)
	m.ctrl.Blur()
	m.ctrl.LostCapture()
	return m.flush()
}

// flush turns pending notifications into a command that delivers them in
// order.
func (m Model) flush() tea.Cmd {
	pending := *m.pending
	if len(pending) == 0 {
		return nil
	}
	*m.pending = nil

	cmds := make([]tea.Cmd, len(pending))
	for i, a := range pending {
		cmds[i] = func() tea.Msg { return ActionMsg(a) }
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// trackLen returns the number of track cells.
func (m Model) trackLen() int {
	if m.Orientation() == slider.Vertical {
		return max(m.Height()-ui.SliderTextRows, 0)
	}
	return m.Width()
}

// track returns the track geometry in screen coordinates. The track sits on
// the row below the label; its first and last cells map to min and max.
func (m Model) track() slider.Track {
	x, y := m.Origin()
	span := float64(max(m.trackLen()-1, 0))
	t := slider.Track{X: float64(x), Y: float64(y + 1)}
	if m.Orientation() == slider.Vertical {
		t.Height = span
	} else {
		t.Width = span
	}
	return t
}

// thumbCell returns the distance in cells from the min end of the track to
// thumb i.
func (m Model) thumbCell(i int) int {
	n := m.trackLen()
	if n <= 1 {
		return 0
	}
	pct := m.ctrl.Thumb(i).Percent
	return int(math.Round(pct / 100 * float64(n-1)))
}

// trackOffset returns the distance in cells from the min end of the track to
// the screen cell (x, y), if that cell is on the track.
func (m Model) trackOffset(x, y int) (int, bool) {
	ox, oy := m.Origin()
	n := m.trackLen()
	if m.Orientation() == slider.Vertical {
		row := y - oy - 1
		if row < 0 || row >= n || x < ox || x >= ox+m.Width() {
			return 0, false
		}
		return n - 1 - row, true
	}
	col := x - ox
	if y != oy+1 || col < 0 || col >= n {
		return 0, false
	}
	return col, true
}

// thumbAt returns the thumb drawn at track offset, if any.
func (m Model) thumbAt(offset int) (int, bool) {
	c0, c1 := m.thumbCell(0), m.thumbCell(1)
	switch {
	case c0 == offset && c1 == offset:
		return m.stackedThumb(), true
	case c0 == offset:
		return 0, true
	case c1 == offset:
		return 1, true
	}
	return 0, false
}

// stackedThumb picks the thumb to grab when both share a cell: the focused
// one, otherwise the lower thumb unless it is pinned at min.
func (m Model) stackedThumb() int {
	if i, ok := m.FocusedThumb(); ok {
		return i
	}
	if m.ctrl.Value().Lower() <= m.ctrl.Config().Min {
		return 1
	}
	return 0
}
