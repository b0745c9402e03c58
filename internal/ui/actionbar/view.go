package actionbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/toolbar"
	"github.com/llehouerou/actionbar/internal/ui/popup"
	"github.com/llehouerou/actionbar/internal/ui/render"
	"github.com/llehouerou/actionbar/internal/ui/styles"
)

// View renders the bar row: the primary buttons followed by the menu
// trigger when there are secondary actions.
func (m Model) View() string {
	zones, total := m.layout()
	items := make(map[string]toolbar.Item, len(zones))
	for _, it := range m.bar.View().Primary {
		items[it.Name] = it
	}

	var b strings.Builder
	col := 0
	for i, z := range zones {
		if z.x > col {
			b.WriteString(strings.Repeat(" ", z.x-col))
		}
		focused := m.IsFocused() && !m.bar.Opened() && i == m.focus
		if z.trigger {
			b.WriteString(m.renderTrigger(focused))
		} else {
			b.WriteString(m.renderButton(items[z.name], focused))
		}
		col = z.x + z.w
	}
	return render.Pad(b.String(), max(m.Width(), total))
}

func (m Model) renderButton(it toolbar.Item, focused bool) string {
	s := styles.T().S()
	glyph := m.glyph(it.Action)
	color := styles.T().ResolveColor(it.IconColor)

	switch {
	case m.pressed == it.Name:
		return s.Pressed.Render(" " + glyph + " ")
	case it.Disabled:
		style := lipgloss.NewStyle().Foreground(styles.Dim(color))
		if focused {
			style = style.Background(styles.T().BgCursor)
		}
		return style.Render(" " + glyph + " ")
	case focused:
		return s.Cursor.Foreground(color).Render(" " + glyph + " ")
	default:
		return lipgloss.NewStyle().Foreground(color).Render(" " + glyph + " ")
	}
}

func (m Model) renderTrigger(focused bool) string {
	s := styles.T().S()
	glyph := " " + m.triggerGlyph() + " "
	switch {
	case m.bar.Opened() && m.bar.OpenSubmenu() == "":
		return s.Cursor.Foreground(styles.T().Primary).Render(glyph)
	case focused:
		return s.Cursor.Render(glyph)
	default:
		return s.Muted.Render(glyph)
	}
}

// MenuView renders the open menu box, or "" when the menu is closed.
func (m Model) MenuView() string {
	if !m.bar.Opened() {
		return ""
	}
	return m.menu.View()
}

// Overlay draws the open menu on top of a rendered screen of the given width.
func (m Model) Overlay(screen string, width int) string {
	box := m.MenuView()
	if box == "" {
		return screen
	}
	x, y := m.MenuPosition()
	return popup.Overlay(screen, box, x, y, width)
}

// StatusView describes the focused button: its title followed by its
// tooltip, or by the reason it is disabled.
func (m Model) StatusView() string {
	if m.bar.Opened() || !m.IsFocused() {
		return ""
	}
	s := styles.T().S()
	name := m.Focused()
	if name == "" {
		zones, _ := m.layout()
		if len(zones) == 0 {
			return ""
		}
		title := m.opts.Title
		if title == "" {
			title = m.keys.Menu.Help().Desc
		}
		return s.Hint.Render(render.Sanitize(title))
	}
	it, ok := m.item(name)
	if !ok {
		return ""
	}

	text := s.Base.Render(render.Sanitize(m.loc.Title(it.Action)))
	hint := it.Tooltip
	if it.Disabled {
		text = s.Disabled.Render(render.Sanitize(m.loc.Title(it.Action)))
		hint = m.loc.DisabledReason(it)
	}
	if hint != "" {
		text += s.Subtle.Render(" · ") + s.Hint.Render(render.Sanitize(hint))
	}
	return text
}

// HelpView renders the key hints for the current mode.
func (m Model) HelpView() string {
	if m.bar.Opened() {
		return m.help.View(m.menu.KeyMap())
	}
	return m.help.View(m.keys)
}
