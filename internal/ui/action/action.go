// Package action defines how UI components report what happened to their host.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is something a UI component reports upward.
// ActionType returns a stable identifier used in logs and the activity log.
type Action interface {
	ActionType() string
}

// Msg wraps an action with the name of the component that produced it.
// Components never call back into the host; they return a Msg from a tea.Cmd.
type Msg struct {
	Source string // Component name: "actionbar", "overflow"
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}

// Cmd returns a command that delivers a as a Msg from source.
func Cmd(source string, a Action) tea.Cmd {
	return func() tea.Msg {
		return Msg{Source: source, Action: a}
	}
}
