// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/rangeslider"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		// The terminal lost focus: any drag in progress is over.
		var cmds []tea.Cmd
		for i := range m.Sliders {
			var cmd tea.Cmd
			m.Sliders[i], cmd = m.Sliders[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case action.Msg:
		return m.handleAction(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	act := m.Keys.Resolve(msg.String())
	switch act {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		return m, nil
	case keymap.ActionSwitchFocus, keymap.ActionSwitchFocusBack:
		if m.Focus == noFocus {
			return m, m.cycleFocus(noFocus, act == keymap.ActionSwitchFocus)
		}
	}

	if m.Focus == noFocus || m.ShowHelp {
		return m, nil
	}
	var cmd tea.Cmd
	m.Sliders[m.Focus], cmd = m.Sliders[m.Focus].Update(msg)
	return m, cmd
}

// handleMouse routes mouse input. A slider owning a drag receives every
// mouse message until release, wherever the pointer goes.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		return m, nil
	}

	for i := range m.Sliders {
		if m.Sliders[i].Dragging() {
			var cmd tea.Cmd
			m.Sliders[i], cmd = m.Sliders[i].Update(msg)
			return m, cmd
		}
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	for i := range m.Sliders {
		if !m.Sliders[i].Contains(msg.X, msg.Y) {
			continue
		}
		var cmds []tea.Cmd
		if msg.Button == tea.MouseButtonLeft && m.Focus != i && m.Sliders[i].Focusable() {
			cmds = append(cmds, m.focusSlider(i, 0))
		}
		var cmd tea.Cmd
		m.Sliders[i], cmd = m.Sliders[i].Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Sequence(cmds...)
	}
	return m, nil
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch a := msg.Action.(type) {
	case rangeslider.ValueChanged:
		return m.handleValueChanged(a)

	case rangeslider.ValueCommitted:
		i, ok := m.sliderIndex(a.Name)
		if !ok {
			return m, nil
		}
		// A controlled slider's pair is the one synced from the preceding
		// change, which has been handled by the time this message arrives.
		s := m.Sliders[i]
		value := a.Value
		if s.Controlled() {
			value = s.Value()
		}
		m.saveRange(a.Name, value)
		m.StatusMsg = s.Label() + ": " + s.FormatPair(value)
		m.Log.Infow("value committed", "slider", a.Name, "lower", value.Lower(), "upper", value.Upper())

	case rangeslider.FocusExhausted:
		if i, ok := m.sliderIndex(a.Name); ok {
			return m, m.cycleFocus(i, a.Forward)
		}
	}
	return m, nil
}

// handleValueChanged accepts the pair proposed by a slider. Controlled
// sliders only move once the host syncs the pair back.
func (m Model) handleValueChanged(a rangeslider.ValueChanged) (tea.Model, tea.Cmd) {
	i, ok := m.sliderIndex(a.Name)
	if !ok {
		return m, nil
	}
	m.Log.Debugw("value changed", "slider", a.Name, "thumb", a.Index, "value", a.Value)

	if m.Sliders[i].Controlled() {
		m.Hosted[a.Name] = a.Value
		m.Sliders[i].Sync(a.Value)
	}
	m.ErrorMsg = ""
	return m, nil
}
