package overflow

import "github.com/llehouerou/actionbar/internal/ui/action"

// Source is the component name carried by every action.Msg of this package.
const Source = "overflow"

// Chosen is reported when an entry is activated. The menu does not judge
// whether the entry may be activated; its owner does.
type Chosen struct {
	Key   string
	Mouse bool // true for clicks, false for keyboard activation
}

// ActionType implements action.Action.
func (Chosen) ActionType() string { return "overflow.chosen" }

// Back is reported when the user leaves a nested level.
type Back struct{}

// ActionType implements action.Action.
func (Back) ActionType() string { return "overflow.back" }

// Dismissed is reported on escape, the close icon or a click outside the box.
type Dismissed struct{}

// ActionType implements action.Action.
func (Dismissed) ActionType() string { return "overflow.dismissed" }

// ActionMsg creates an action.Msg for an overflow action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: Source, Action: a}
}
