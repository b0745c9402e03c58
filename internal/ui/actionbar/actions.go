package actionbar

import (
	"github.com/llehouerou/actionbar/internal/toolbar"
	"github.com/llehouerou/actionbar/internal/ui/action"
)

// Source is the component name carried by every action.Msg of this package.
const Source = "actionbar"

// Triggered is reported exactly once per dispatched action.
type Triggered struct {
	Name string
	Via  toolbar.Source
}

// ActionType implements action.Action.
func (Triggered) ActionType() string { return "actionbar.triggered" }

// OpenChanged is reported when user interaction opens or closes the menu.
type OpenChanged struct {
	Opened bool
}

// ActionType implements action.Action.
func (OpenChanged) ActionType() string { return "actionbar.open_changed" }

// ActionMsg creates an action.Msg for an actionbar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
