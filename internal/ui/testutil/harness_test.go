package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rangeslider/internal/ui/action"
)

type pressed struct{ key string }

func (p pressed) ActionType() string { return "mock.pressed" }

// mockComponent records input and echoes keys back as actions.
type mockComponent struct {
	keys   []string
	mouse  []tea.MouseMsg
	output string
}

func (m mockComponent) Update(msg tea.Msg) (mockComponent, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.keys = append(m.keys, msg.String())
		k := msg.String()
		emit := func() tea.Msg { return action.Msg{Source: "mock", Action: pressed{k}} }
		if msg.Type == tea.KeyEnter {
			return m, tea.Sequence(emit, func() tea.Msg { return "done" }, emit)
		}
		return m, emit
	case tea.MouseMsg:
		m.mouse = append(m.mouse, msg)
	}
	return m, nil
}

func (m mockComponent) View() string { return m.output }

func TestHarness_Keys(t *testing.T) {
	h := NewHarness(mockComponent{output: "view"})

	h.SendKey("l")
	h.SendSpecialKey(tea.KeyHome)

	assert.Equal(t, []string{"l", "home"}, h.Model().keys)
	assert.Equal(t, "view", h.View())
	assert.Len(t, h.Commands(), 2)
}

func TestHarness_Mouse(t *testing.T) {
	h := NewHarness(mockComponent{})

	h.Press(3, 4)
	h.Motion(5, 4)
	h.Release(6, 4)
	h.Click(1, 1)

	got := h.Model().mouse
	require.Len(t, got, 5)
	assert.Equal(t, tea.MouseActionPress, got[0].Action)
	assert.Equal(t, tea.MouseActionMotion, got[1].Action)
	assert.Equal(t, 5, got[1].X)
	assert.Equal(t, tea.MouseActionRelease, got[2].Action)
	assert.Equal(t, tea.MouseButtonLeft, got[4].Button)
	assert.Empty(t, h.Commands())
}

func TestHarness_ActionsExpandsSequences(t *testing.T) {
	h := NewHarness(mockComponent{})

	h.SendKey("a")
	h.SendSpecialKey(tea.KeyEnter)

	actions := h.Actions()
	require.Len(t, actions, 3)
	assert.Equal(t, pressed{"a"}, actions[0])
	assert.Equal(t, pressed{"enter"}, actions[1])
	assert.Equal(t, pressed{"enter"}, actions[2])
	assert.Empty(t, h.Commands(), "actions clears commands")
}

func TestHarness_LastAndClear(t *testing.T) {
	h := NewHarness(mockComponent{})
	assert.Nil(t, h.LastCommand())

	h.SendKey("x")
	require.NotNil(t, h.LastCommand())

	h.ClearCommands()
	assert.Nil(t, h.LastCommand())
}

func TestFlatten_Batch(t *testing.T) {
	a := func() tea.Msg { return "a" }
	b := func() tea.Msg { return "b" }

	msgs := Flatten(tea.Batch(a, nil, b))
	assert.ElementsMatch(t, []tea.Msg{"a", "b"}, msgs)
	assert.Nil(t, Flatten(nil))
}

func TestExecuteCmd_Nil(t *testing.T) {
	assert.Nil(t, ExecuteCmd(nil))
}
