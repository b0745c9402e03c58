package actionbar

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/actionbar/internal/toolbar"
	"github.com/llehouerou/actionbar/internal/ui/action"
	"github.com/llehouerou/actionbar/internal/ui/overflow"
)

// feedbackDoneMsg ends the press feedback of generation seq.
type feedbackDoneMsg struct {
	seq int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles keys, mouse events, feedback ticks and the overflow menu's
// actions. Messages it does not know are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetScreenSize(msg.Width, msg.Height)
	case feedbackDoneMsg:
		cmd = m.handleFeedbackDone(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case action.Msg:
		if msg.Source == overflow.Source {
			cmd = m.handleMenuAction(msg.Action)
		}
	}
	m.sync()
	return m, tea.Batch(cmd, m.Notify())
}

// Notify reports an open state change that has not been reported yet, for
// instance a submenu closed because the host removed its action.
func (m *Model) Notify() tea.Cmd {
	if m.bar.Opened() == m.lastOpened {
		return nil
	}
	m.lastOpened = m.bar.Opened()
	return action.Cmd(Source, OpenChanged{Opened: m.lastOpened})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.IsFocused() {
		return nil
	}
	if m.bar.Opened() {
		var cmd tea.Cmd
		_, cmd = m.menu.Update(msg)
		return cmd
	}

	zones, _ := m.layout()
	switch {
	case key.Matches(msg, m.keys.Left):
		m.focus = max(m.focus-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.focus = min(m.focus+1, max(len(zones)-1, 0))
	case key.Matches(msg, m.keys.Activate):
		if m.focus < len(zones) {
			return m.press(zones[m.focus])
		}
	case key.Matches(msg, m.keys.Menu):
		m.openMenu()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionMotion {
		m.bar.SetHover(m.onBar(msg.X, msg.Y))
	}

	if z, i, ok := m.zoneAt(msg.X, msg.Y); ok {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.focus = i
			return m.press(z)
		}
		return nil
	}

	if m.bar.Opened() {
		var cmd tea.Cmd
		_, cmd = m.menu.Update(msg)
		return cmd
	}
	return nil
}

// press activates a bar button. The trigger toggles the menu.
func (m *Model) press(z zone) tea.Cmd {
	if z.trigger {
		if m.bar.Opened() {
			m.closeMenu()
		} else {
			m.openMenu()
		}
		return nil
	}
	return m.activate(z.name, toolbar.SourceButton)
}

func (m *Model) openMenu() {
	if len(m.bar.View().Secondary) == 0 {
		return
	}
	m.bar.Open()
}

func (m *Model) closeMenu() {
	m.bar.Close()
	m.menu.ClearSelection()
}

func (m *Model) activate(name string, src toolbar.Source) tea.Cmd {
	out := m.bar.Activate(name, src)
	switch out.Kind {
	case toolbar.Dispatched:
		m.menu.ClearSelection()
		return triggered(out.Event, src)
	case toolbar.Deferred:
		m.pressed = name
		m.seq++
		seq := m.seq
		return tea.Tick(m.opts.Feedback, func(time.Time) tea.Msg {
			return feedbackDoneMsg{seq: seq}
		})
	case toolbar.Expanded:
		m.menu.ClearSelection()
	case toolbar.Ignored:
		m.bar.Select("")
		m.menu.ClearSelection()
	}
	return nil
}

func (m *Model) handleFeedbackDone(msg feedbackDoneMsg) tea.Cmd {
	if msg.seq != m.seq {
		return nil
	}
	m.pressed = ""
	ev, ok := m.bar.Complete()
	if !ok {
		return nil
	}
	m.menu.ClearSelection()
	return triggered(ev, toolbar.SourceButton)
}

func (m *Model) handleMenuAction(a action.Action) tea.Cmd {
	switch a := a.(type) {
	case overflow.Chosen:
		src := toolbar.SourceKeyboard
		if a.Mouse {
			src = toolbar.SourceMenuItem
		}
		m.bar.Select(a.Key)
		return m.activate(a.Key, src)
	case overflow.Back:
		m.bar.Back()
		m.menu.ClearSelection()
	case overflow.Dismissed:
		m.closeMenu()
	}
	return nil
}

func triggered(ev toolbar.Event, src toolbar.Source) tea.Cmd {
	return action.Cmd(Source, Triggered{Name: ev.Name, Via: src})
}
