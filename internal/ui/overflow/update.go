package overflow

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/ui/action"
	"github.com/llehouerou/actionbar/internal/ui/popup"
)

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(m.entries)
	switch {
	case key.Matches(msg, m.keys.Dismiss):
		return action.Cmd(Source, Dismissed{})
	case key.Matches(msg, m.keys.Choose):
		return m.choose(false)
	case key.Matches(msg, m.keys.Expand):
		if e, ok := m.Highlighted(); ok && e.HasChildren {
			return m.choose(false)
		}
		return nil
	case key.Matches(msg, m.keys.Back):
		if m.opts.ShowBack {
			return action.Cmd(Source, Back{})
		}
		return nil
	}
	m.cursor.HandleKey(msg.String(), n, m.windowHeight())
	return nil
}

func (m *Model) choose(mouse bool) tea.Cmd {
	e, ok := m.Highlighted()
	if !ok {
		return nil
	}
	m.selected = e.Key
	return action.Cmd(Source, Chosen{Key: e.Key, Mouse: mouse})
}

// handleMouse maps screen coordinates onto the box. Presses outside the box
// dismiss the menu; motion over an entry moves the highlight.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	n := len(m.entries)
	height := m.windowHeight()

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor.Move(-1, n, height)
		return nil
	case tea.MouseButtonWheelDown:
		m.cursor.Move(1, n, height)
		return nil
	}

	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
	motion := msg.Action == tea.MouseActionMotion
	if !press && !motion {
		return nil
	}

	boxW, boxH := m.BoxSize()
	lx, ly := m.Local(msg.X, msg.Y)
	if lx < 0 || ly < 0 || lx >= boxW || ly >= boxH {
		if press {
			return action.Cmd(Source, Dismissed{})
		}
		return nil
	}

	// content coordinates, inside border and padding
	cx, cy := lx-2, ly-1
	if cy < m.headerRows() {
		if press && cy == 0 {
			return m.clickHeader(cx)
		}
		return nil
	}

	idx, ok := m.cursor.At(cy-m.headerRows(), n, height)
	if !ok {
		return nil
	}
	m.cursor.Jump(idx, n, height)
	if press {
		return m.choose(true)
	}
	return nil
}

func (m *Model) clickHeader(col int) tea.Cmd {
	h := m.header(m.innerWidth())
	if h.closeAt >= 0 && hit(col, h.closeAt, m.opts.CloseGlyph) {
		return action.Cmd(Source, Dismissed{})
	}
	if h.backAt >= 0 && hit(col, h.backAt, m.opts.BackGlyph) {
		return action.Cmd(Source, Back{})
	}
	return nil
}

func hit(col, at int, glyph string) bool {
	w := max(lipgloss.Width(glyph), 1)
	return col >= at && col < at+w
}
