package rangeslider

import (
	"github.com/llehouerou/rangeslider/internal/slider"
	"github.com/llehouerou/rangeslider/internal/ui/action"
)

// ValueChanged reports an accepted change of a slider's pair. For a
// controlled slider the host must Sync the pair for it to take effect.
type ValueChanged struct {
	Name  string
	Value slider.Pair
	Index int // thumb that moved
}

// ActionType implements action.Action.
func (a ValueChanged) ActionType() string { return "rangeslider.value_changed" }

// ValueCommitted signals the end of an interaction. Value is the pair the
// slider held when the interaction ended. A controlled slider only holds what
// the host synced, so its host should read Value() when handling this action
// instead.
type ValueCommitted struct {
	Name  string
	Value slider.Pair
}

// ActionType implements action.Action.
func (a ValueCommitted) ActionType() string { return "rangeslider.value_committed" }

// FocusExhausted reports that tab moved past the last thumb (Forward) or
// shift+tab past the first one, so the host should focus a neighbor.
type FocusExhausted struct {
	Name    string
	Forward bool
}

// ActionType implements action.Action.
func (a FocusExhausted) ActionType() string { return "rangeslider.focus_exhausted" }

// ActionMsg creates an action.Msg for a rangeslider action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "rangeslider", Action: a}
}
