package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/state"
	"github.com/llehouerou/rangeslider/internal/ui/action"
	"github.com/llehouerou/rangeslider/internal/ui/rangeslider"
	"github.com/llehouerou/rangeslider/internal/ui/testutil"
)

// Slider indexes in testConfig.
const (
	price = iota
	locked
	temp
	gain
)

func testConfig() *config.Config {
	return &config.Config{Sliders: []config.SliderConfig{
		{Name: "price", Label: "Price", Default: []float64{20, 80}},
		{Name: "locked", Label: "Locked", Disabled: true},
		{Name: "temp", Label: "Temp", Default: []float64{18, 24}, Controlled: true},
		{Name: "gain", Label: "Gain", Orientation: "vertical"},
	}}
}

// send delivers msg and then every action its commands produce, the way the
// bubbletea runtime would. Non-action messages are returned.
func send(t *testing.T, m Model, msg tea.Msg) (Model, []tea.Msg) {
	t.Helper()
	queue := []tea.Msg{msg}
	var other []tea.Msg
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)

		for _, out := range testutil.Flatten(cmd) {
			if _, isAction := out.(action.Msg); isAction {
				queue = append(queue, out)
			} else {
				other = append(other, out)
			}
		}
	}
	return m, other
}

func sendAll(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		m, _ = send(t, m, msg)
	}
	return m
}

func key(k tea.KeyType) tea.Msg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func mouse(x, y int, a tea.MouseAction) tea.Msg {
	return tea.MouseMsg{X: x, Y: y, Action: a, Button: tea.MouseButtonLeft}
}

// newTestModel returns a laid-out 100x40 app. The horizontal column is 80
// wide, so each horizontal track has 78 cells starting at x=1; track rows
// are 3 (price), 7 (locked) and 11 (temp).
func newTestModel(t *testing.T, mgr state.Interface) Model {
	t.Helper()
	m := New(testConfig(), mgr, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestNew_FocusesFirstFocusable(t *testing.T) {
	m := New(testConfig(), nil, nil)
	assert.Equal(t, price, m.Focus)

	cfg := testConfig()
	cfg.Sliders = cfg.Sliders[locked:]
	m = New(cfg, nil, nil)
	assert.Equal(t, 1, m.Focus, "disabled slider is skipped")
}

func TestNew_SavedRangesWin(t *testing.T) {
	mgr := state.NewMock()
	mgr.SetRange("price", slider.Pair{30, 70})
	mgr.SetRange("temp", slider.Pair{10, 90})

	m := New(testConfig(), mgr, nil)

	assert.Equal(t, slider.Pair{30, 70}, m.Sliders[price].Value())
	assert.Equal(t, slider.Pair{10, 90}, m.Sliders[temp].Value())
	assert.Equal(t, slider.Pair{10, 90}, m.Hosted["temp"])
	assert.Equal(t, slider.Pair{0, 100}, m.Sliders[gain].Value(), "no default means full range")
}

func TestNew_SavedRangeIsNormalized(t *testing.T) {
	mgr := state.NewMock()
	mgr.SetRange("temp", slider.Pair{90, 10.4})

	m := New(testConfig(), mgr, nil)

	assert.Equal(t, slider.Pair{10, 10}, m.Hosted["temp"])
	assert.Equal(t, m.Hosted["temp"], m.Sliders[temp].Value())
}

func TestNew_LoadErrorKeepsDefaults(t *testing.T) {
	mgr := state.NewMock()
	mgr.SetLoadError(errors.New("database is locked"))

	m := New(testConfig(), mgr, nil)

	assert.Equal(t, "Failed to load saved ranges: database is locked", m.ErrorMsg)
	assert.Equal(t, slider.Pair{20, 80}, m.Sliders[price].Value())
}

func TestKey_CommitIsPersisted(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)

	m = sendAll(t, m, key(tea.KeyRight), runes("l"))

	assert.Equal(t, slider.Pair{22, 80}, m.Sliders[price].Value())
	saved, ok := mgr.Range("price")
	require.True(t, ok)
	assert.Equal(t, slider.Pair{22, 80}, saved)
	assert.Equal(t, 2, mgr.Saves())
	assert.Equal(t, "Price: 22 – 80", m.StatusMsg)
}

func TestKey_NoOpIsNotPersisted(t *testing.T) {
	mgr := state.NewMock()
	mgr.SetRange("price", slider.Pair{0, 80})
	m := newTestModel(t, mgr)

	m = sendAll(t, m, key(tea.KeyLeft))

	assert.Equal(t, 0, mgr.Saves())
	assert.Empty(t, m.StatusMsg)
}

func TestTab_MovesAcrossSliders(t *testing.T) {
	m := newTestModel(t, nil)

	m = sendAll(t, m, key(tea.KeyTab))
	assert.Equal(t, price, m.Focus)
	thumb, _ := m.Sliders[price].FocusedThumb()
	assert.Equal(t, 1, thumb)

	m = sendAll(t, m, key(tea.KeyTab))
	assert.Equal(t, temp, m.Focus, "disabled slider is skipped")
	assert.False(t, m.Sliders[price].IsFocused())
	thumb, _ = m.Sliders[temp].FocusedThumb()
	assert.Equal(t, 0, thumb)
}

func TestShiftTab_WrapsToLastThumb(t *testing.T) {
	m := newTestModel(t, nil)

	m = sendAll(t, m, key(tea.KeyShiftTab))

	assert.Equal(t, gain, m.Focus)
	thumb, ok := m.Sliders[gain].FocusedThumb()
	require.True(t, ok)
	assert.Equal(t, 1, thumb)
}

func TestControlled_SyncedBeforeCommit(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)
	m = sendAll(t, m, key(tea.KeyTab), key(tea.KeyTab))
	require.Equal(t, temp, m.Focus)

	m = sendAll(t, m, key(tea.KeyRight))

	want := slider.Pair{19, 24}
	assert.Equal(t, want, m.Hosted["temp"])
	assert.Equal(t, want, m.Sliders[temp].Value())
	saved, _ := mgr.Range("temp")
	assert.Equal(t, want, saved, "commit reads the synced pair")
}

func TestCommit_UncontrolledSavesEndOfInteractionPair(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)

	// A later interaction may have moved the slider before the commit is
	// handled; the pair at the end of the committed interaction is saved.
	m = sendAll(t, m, rangeslider.ActionMsg(rangeslider.ValueCommitted{
		Name:  "price",
		Value: slider.Pair{30, 80},
	}))

	saved, ok := mgr.Range("price")
	require.True(t, ok)
	assert.Equal(t, slider.Pair{30, 80}, saved)
	assert.Equal(t, "Price: 30 – 80", m.StatusMsg)
	assert.Equal(t, slider.Pair{20, 80}, m.Sliders[price].Value())
}

func TestCommit_ControlledReadsHostPair(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)

	m = sendAll(t, m, rangeslider.ActionMsg(rangeslider.ValueCommitted{
		Name:  "temp",
		Value: slider.Pair{1, 2},
	}))

	saved, _ := mgr.Range("temp")
	assert.Equal(t, slider.Pair{18, 24}, saved)
	assert.Equal(t, "Temp: 18 – 24", m.StatusMsg)
}

func TestLayout(t *testing.T) {
	m := newTestModel(t, nil)

	x, y := m.Sliders[price].Origin()
	assert.Equal(t, [2]int{1, 2}, [2]int{x, y})
	w, h := m.Sliders[price].Size()
	assert.Equal(t, [2]int{78, 2}, [2]int{w, h})

	x, y = m.Sliders[temp].Origin()
	assert.Equal(t, [2]int{1, 10}, [2]int{x, y})

	x, y = m.Sliders[gain].Origin()
	assert.Equal(t, [2]int{81, 2}, [2]int{x, y})
	w, h = m.Sliders[gain].Size()
	assert.Equal(t, [2]int{14, 14}, [2]int{w, h})
}

func TestMouse_DragThumb(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)

	// Lower thumb at 20 sits on cell round(0.2*77) = 15.
	m = sendAll(t, m,
		mouse(16, 3, tea.MouseActionPress),
		mouse(40, 20, tea.MouseActionMotion), // pointer may leave the slider
	)
	assert.Equal(t, 0, mgr.Saves(), "no commit while dragging")

	m = sendAll(t, m, mouse(40, 20, tea.MouseActionRelease))

	// (40-1)/77 of the range rounds to 51.
	assert.Equal(t, slider.Pair{51, 80}, m.Sliders[price].Value())
	saved, _ := mgr.Range("price")
	assert.Equal(t, slider.Pair{51, 80}, saved)
	assert.False(t, m.Sliders[price].Dragging())
}

func TestMouse_PressFocusesSlider(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)

	// 60/77 of the range is 78, nearer to the upper thumb.
	m = sendAll(t, m,
		mouse(61, 11, tea.MouseActionPress),
		mouse(61, 11, tea.MouseActionRelease),
	)

	assert.Equal(t, temp, m.Focus)
	assert.False(t, m.Sliders[price].IsFocused())
	assert.Equal(t, slider.Pair{18, 78}, m.Sliders[temp].Value())
	saved, _ := mgr.Range("temp")
	assert.Equal(t, slider.Pair{18, 78}, saved)
}

func TestMouse_DisabledSliderIgnored(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)

	m = sendAll(t, m,
		mouse(40, 7, tea.MouseActionPress),
		mouse(50, 7, tea.MouseActionMotion),
		mouse(50, 7, tea.MouseActionRelease),
	)

	assert.Equal(t, price, m.Focus)
	assert.Equal(t, slider.Pair{0, 100}, m.Sliders[locked].Value())
	assert.Equal(t, 0, mgr.Saves())
}

func TestTerminalBlur_CommitsDrag(t *testing.T) {
	mgr := state.NewMock()
	m := newTestModel(t, mgr)

	m = sendAll(t, m,
		mouse(16, 3, tea.MouseActionPress),
		mouse(20, 3, tea.MouseActionMotion),
		tea.BlurMsg{},
	)

	assert.False(t, m.Sliders[price].Dragging())
	assert.Equal(t, 1, mgr.Saves())
}

func TestHelp_Toggle(t *testing.T) {
	m := newTestModel(t, nil)

	m = sendAll(t, m, runes("?"))
	require.True(t, m.ShowHelp)
	assert.Contains(t, testutil.StripANSI(m.View()), "Large step up")

	m = sendAll(t, m, key(tea.KeyRight))
	assert.Equal(t, slider.Pair{20, 80}, m.Sliders[price].Value(), "keys do not reach sliders under help")

	m = sendAll(t, m, runes("?"))
	assert.False(t, m.ShowHelp)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)

	_, out := send(t, m, runes("q"))

	require.Len(t, out, 1)
	assert.Equal(t, tea.QuitMsg{}, out[0])
}

func TestView(t *testing.T) {
	m := newTestModel(t, nil)

	view := testutil.StripANSI(m.View())

	assert.Len(t, testutil.SplitLines(view), 40)
	assert.True(t, testutil.ContainsLine(view, "Range sliders"))
	assert.Contains(t, testutil.FindLine(view, "Price"), "20 – 80")
	assert.True(t, testutil.ContainsLine(view, "Gain"))
	assert.True(t, testutil.ContainsLine(view, "Quit"), "help line")
}

func TestView_BeforeSize(t *testing.T) {
	m := New(testConfig(), nil, nil)
	assert.Empty(t, m.View())
}
