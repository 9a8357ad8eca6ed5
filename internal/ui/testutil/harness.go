package testutil

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/rangeslider/internal/ui/action"
)

// Component is a bubbletea component whose Update returns its own type.
type Component[T any] interface {
	Update(msg tea.Msg) (T, tea.Cmd)
	View() string
}

// Harness wraps a component for testing, providing helpers to simulate
// keyboard and mouse input and to inspect the commands it returns.
type Harness[T Component[T]] struct {
	model T
	cmds  []tea.Cmd
}

// NewHarness creates a test harness around m.
func NewHarness[T Component[T]](m T) *Harness[T] {
	return &Harness[T]{model: m}
}

// Model returns the current component state.
func (h *Harness[T]) Model() T {
	return h.model
}

// View returns the component's rendered content.
func (h *Harness[T]) View() string {
	return h.model.View()
}

// SendMsg sends any message to the component and returns the resulting command.
func (h *Harness[T]) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key as runes ("l", "G").
func (h *Harness[T]) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (arrows, home, tab, etc.).
func (h *Harness[T]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Press sends a left button press at screen cell (x, y).
func (h *Harness[T]) Press(x, y int) tea.Cmd {
	return h.sendMouse(x, y, tea.MouseActionPress)
}

// Motion sends a pointer move with the left button held.
func (h *Harness[T]) Motion(x, y int) tea.Cmd {
	return h.sendMouse(x, y, tea.MouseActionMotion)
}

// Release sends a left button release at screen cell (x, y).
func (h *Harness[T]) Release(x, y int) tea.Cmd {
	return h.sendMouse(x, y, tea.MouseActionRelease)
}

// Click sends a press immediately followed by a release.
func (h *Harness[T]) Click(x, y int) {
	h.Press(x, y)
	h.Release(x, y)
}

func (h *Harness[T]) sendMouse(x, y int, a tea.MouseAction) tea.Cmd {
	return h.SendMsg(tea.MouseMsg{X: x, Y: y, Action: a, Button: tea.MouseButtonLeft})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness[T]) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness[T]) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness[T]) ClearCommands() {
	h.cmds = nil
}

// Actions runs every collected command, in order, and returns the component
// actions they produced. Collected commands are cleared.
func (h *Harness[T]) Actions() []action.Action {
	var out []action.Action
	for _, cmd := range h.cmds {
		for _, msg := range Flatten(cmd) {
			if am, ok := msg.(action.Msg); ok {
				out = append(out, am.Action)
			}
		}
	}
	h.cmds = nil
	return out
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Flatten runs cmd and returns the messages it produces, expanding batched
// and sequenced commands in order.
func Flatten(cmd tea.Cmd) []tea.Msg {
	msg := ExecuteCmd(cmd)
	if msg == nil {
		return nil
	}
	cmds, ok := commandList(msg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range cmds {
		out = append(out, Flatten(c)...)
	}
	return out
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// commandList unpacks tea.BatchMsg and the sequence message produced by
// tea.Sequence, which is an unexported slice of commands.
func commandList(msg tea.Msg) ([]tea.Cmd, bool) {
	if b, ok := msg.(tea.BatchMsg); ok {
		return b, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}
