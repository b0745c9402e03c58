// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/ui"
	"github.com/llehouerou/actionbar/internal/ui/action"
	"github.com/llehouerou/actionbar/internal/ui/popup"
	"github.com/llehouerou/actionbar/internal/ui/render"
	"github.com/llehouerou/actionbar/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// KeyMap defines the answers the popup accepts.
type KeyMap struct {
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap answers with enter/y or esc/n.
var DefaultKeyMap = KeyMap{
	Yes: key.NewBinding(
		key.WithKeys("enter", "y", "Y"),
		key.WithHelp("enter/y", "confirm"),
	),
	No: key.NewBinding(
		key.WithKeys("esc", "n", "N"),
		key.WithHelp("esc/n", "cancel"),
	),
}

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	keys    KeyMap
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{keys: DefaultKeyMap}
}

// Show displays the popup. context is handed back in the Result.
func (m *Model) Show(title, message string, context any, width, height int) {
	m.title = title
	m.message = message
	m.context = context
	m.SetSize(width, height)
	m.active = true
}

// Reset hides the popup without reporting a result.
func (m *Model) Reset() {
	m.title = ""
	m.message = ""
	m.context = nil
	m.active = false
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		return m, m.answer(true)
	case key.Matches(keyMsg, m.keys.No):
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(confirmed bool) tea.Cmd {
	ctx := m.context
	m.Reset()
	return action.Cmd(Source, Result{Confirmed: confirmed, Context: ctx})
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	inner := max(m.Width()-ui.BorderWidth, 1)

	hint := m.keys.Yes.Help().Key + ": " + m.keys.Yes.Help().Desc +
		", " + m.keys.No.Help().Key + ": " + m.keys.No.Help().Desc
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(render.Truncate(m.title, inner)),
		"",
		s.Base.Render(render.Truncate(m.message, inner)),
		"",
		s.Hint.Render(render.Truncate(hint, inner)),
	)
	return styles.MenuBox(true).Render(content)
}
