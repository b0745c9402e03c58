package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/actionbar/internal/ui/action"
)

// recorder keeps the non-nil commands returned by a component under test.
type recorder struct {
	cmds []tea.Cmd
}

func (r *recorder) add(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		r.cmds = append(r.cmds, cmd)
	}
	return cmd
}

// Commands returns the commands collected since creation or the last
// ClearCommands.
func (r *recorder) Commands() []tea.Cmd {
	return r.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (r *recorder) LastCommand() tea.Cmd {
	if len(r.cmds) == 0 {
		return nil
	}
	return r.cmds[len(r.cmds)-1]
}

// ClearCommands forgets the collected commands.
func (r *recorder) ClearCommands() {
	r.cmds = nil
}

// LastAction runs the most recent command and returns the first action.Msg
// it produces.
func (r *recorder) LastAction() (action.Msg, bool) {
	actions := Actions(r.LastCommand())
	if len(actions) == 0 {
		return action.Msg{}, false
	}
	return actions[0], true
}
