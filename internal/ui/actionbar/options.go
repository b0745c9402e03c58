package actionbar

import (
	"time"

	"github.com/llehouerou/actionbar/internal/icons"
)

// DefaultFeedback is how long a pressed button stays highlighted before its
// action is dispatched.
const DefaultFeedback = 150 * time.Millisecond

// Options holds the cosmetic settings of the bar and its menu.
type Options struct {
	Feedback      time.Duration // 0 dispatches button presses immediately
	ButtonGap     int
	AlignRight    bool
	CloseIconLeft bool
	NoCloseIcon   bool
	TriggerIcon   string // icon identifier of the menu button
	Title         string // heading of the secondary menu
	MaxMenuHeight int    // visible menu rows, 0 shows all that fit
}

// DefaultOptions returns right-aligned buttons one cell apart with press
// feedback enabled.
func DefaultOptions() Options {
	return Options{
		Feedback:    DefaultFeedback,
		ButtonGap:   1,
		AlignRight:  true,
		TriggerIcon: icons.MoreVert,
	}
}
