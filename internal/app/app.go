// internal/app/app.go
package app

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/rangeslider/internal/config"
	"github.com/llehouerou/rangeslider/internal/errmsg"
	"github.com/llehouerou/rangeslider/internal/keymap"
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/state"
	"github.com/llehouerou/rangeslider/internal/ui/rangeslider"
)

const noFocus = -1

// Model is the root application model containing all state.
type Model struct {
	Sliders []rangeslider.Model
	Focus   int // index into Sliders, or noFocus

	// Hosted holds the pairs this model owns for controlled sliders.
	Hosted map[string]slider.Pair

	StateMgr state.Interface // nil when persistence is off
	Log      *zap.SugaredLogger
	Keys     *keymap.Resolver
	Help     help.Model
	ShowHelp bool

	StatusMsg string
	ErrorMsg  string
	Width     int
	Height    int
}

// New creates the application model from configuration. Saved ranges from
// stateMgr take precedence over configured defaults. A nil stateMgr disables
// persistence.
func New(cfg *config.Config, stateMgr state.Interface, log *zap.SugaredLogger) Model {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	m := Model{
		Focus:    noFocus,
		Hosted:   make(map[string]slider.Pair),
		StateMgr: stateMgr,
		Log:      log.Named("app"),
		Keys:     keymap.Default(),
		Help:     help.New(),
	}

	saved := m.loadSavedRanges()
	for _, sc := range cfg.Sliders {
		m.Sliders = append(m.Sliders, m.newSlider(sc, saved))
	}

	if i := m.nextFocusable(noFocus, true); i != noFocus {
		m.focusSlider(i, 0)
	}
	return m
}

// newSlider builds the component for one configured slider.
func (m *Model) newSlider(sc config.SliderConfig, saved map[string]slider.Pair) rangeslider.Model {
	cfg := sc.ToSliderConfig()
	initial := sc.DefaultPair()
	if p, ok := saved[sc.Name]; ok {
		initial = &p
	}

	var ctrl *slider.Controller
	if sc.Controlled {
		p := slider.DefaultPair(cfg)
		if initial != nil {
			p = *initial
		}
		ctrl = slider.NewControlled(cfg, p, slider.Handlers{})
		m.Hosted[sc.Name] = ctrl.Value()
	} else {
		ctrl = slider.NewUncontrolled(cfg, initial, slider.Handlers{})
	}
	ctrl.SetOptions(sc.Options())

	m.Log.Debugw("slider created",
		"slider", sc.Name,
		"controlled", sc.Controlled,
		"value", ctrl.Value(),
	)
	return rangeslider.New(sc.Name, sc.DisplayLabel(), ctrl)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// FocusedSlider returns the focused slider, if any.
func (m Model) FocusedSlider() (rangeslider.Model, bool) {
	if m.Focus == noFocus {
		return rangeslider.Model{}, false
	}
	return m.Sliders[m.Focus], true
}

// sliderIndex returns the index of the slider named name.
func (m Model) sliderIndex(name string) (int, bool) {
	for i, s := range m.Sliders {
		if s.Name() == name {
			return i, true
		}
	}
	return 0, false
}

func (m *Model) setError(op errmsg.Op, context string, err error) {
	m.ErrorMsg = errmsg.FormatWith(op, context, err)
	m.Log.Errorw(string(op), "context", context, "error", err)
}
