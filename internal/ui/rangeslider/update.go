package rangeslider

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
)

// keyCommands maps key actions to slider keyboard commands.
var keyCommands = map[keymap.Action]slider.Key{
	keymap.ActionMoveRight: slider.KeyRight,
	keymap.ActionMoveUp:    slider.KeyUp,
	keymap.ActionMoveLeft:  slider.KeyLeft,
	keymap.ActionMoveDown:  slider.KeyDown,
	keymap.ActionJumpStart: slider.KeyHome,
	keymap.ActionJumpEnd:   slider.KeyEnd,
	keymap.ActionPageUp:    slider.KeyPageUp,
	keymap.ActionPageDown:  slider.KeyPageDown,
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard, mouse and terminal focus messages.
// Mouse coordinates are screen coordinates.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.IsFocused() {
			m.handleKey(msg)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.BlurMsg:
		m.ctrl.LostCapture()
	}
	return m, m.flush()
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	act := m.resolver.Resolve(msg.String())
	switch act {
	case keymap.ActionSwitchFocus:
		m.cycleFocus(true)
	case keymap.ActionSwitchFocusBack:
		m.cycleFocus(false)
	default:
		if k, ok := keyCommands[act]; ok {
			m.ctrl.HandleFocusedKey(k)
		}
	}
}

// cycleFocus moves focus between the two thumbs and reports FocusExhausted
// when it would leave the component.
func (m *Model) cycleFocus(forward bool) {
	i, ok := m.ctrl.Focused()
	switch {
	case !ok && forward:
		m.ctrl.Focus(0)
	case !ok:
		m.ctrl.Focus(1)
	case forward && i == 0:
		m.ctrl.Focus(1)
	case !forward && i == 1:
		m.ctrl.Focus(0)
	default:
		*m.pending = append(*m.pending, FocusExhausted{Name: m.name, Forward: forward})
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.ctrl.SetTrack(m.track())
	pt := slider.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.press(msg.X, msg.Y, pt)
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
			m.wheel(msg.X, msg.Y, slider.KeyUp)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
			m.wheel(msg.X, msg.Y, slider.KeyDown)
		}
	case tea.MouseActionMotion:
		m.ctrl.PointerMove(pt)
	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
}

// press grabs the thumb under the pointer, or moves the nearest thumb to
// the pressed track cell and keeps it captured for dragging.
func (m *Model) press(x, y int, pt slider.Point) {
	offset, ok := m.trackOffset(x, y)
	if !ok {
		return
	}
	if i, ok := m.thumbAt(offset); ok {
		m.ctrl.PointerDown(i)
		return
	}
	m.ctrl.TrackPress(pt)
}

// wheel steps the focused thumb when the pointer is over the slider.
func (m *Model) wheel(x, y int, k slider.Key) {
	if !m.IsFocused() || !m.Contains(x, y) {
		return
	}
	m.ctrl.HandleFocusedKey(k)
}
