package overflow

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/ui"
	"github.com/llehouerou/actionbar/internal/ui/render"
	"github.com/llehouerou/actionbar/internal/ui/styles"
)

const minInnerWidth = 12

// header describes the first menu line and where its clickable glyphs sit,
// in columns relative to the content area.
type header struct {
	line    string
	closeAt int // -1 when absent
	backAt  int // -1 when absent
}

// View implements popup.Popup.
func (m *Model) View() string {
	inner := m.innerWidth()
	var lines []string

	if m.hasHeader() {
		lines = append(lines, m.header(inner).line)
		lines = append(lines, styles.T().S().Subtle.Render(render.Separator(inner)))
	}

	n := len(m.entries)
	start, end := m.cursor.VisibleRange(n, m.windowHeight())
	for i := start; i < end; i++ {
		lines = append(lines, m.entryLine(m.entries[i], i == m.cursor.Pos(), inner))
	}

	if e, ok := m.Highlighted(); ok && e.Hint != "" {
		lines = append(lines, styles.T().S().Hint.Render(render.Fit(e.Hint, inner)))
	}

	return styles.MenuBox(m.IsFocused()).Render(strings.Join(lines, "\n"))
}

// BoxSize returns the rendered size of the menu including its border.
func (m *Model) BoxSize() (width, height int) {
	width = m.innerWidth() + ui.BorderWidth
	height = 2 + m.headerRows()
	start, end := m.cursor.VisibleRange(len(m.entries), m.windowHeight())
	height += end - start
	if e, ok := m.Highlighted(); ok && e.Hint != "" {
		height++
	}
	return width, height
}

// innerWidth fits the widest label, header and hint so the box keeps its
// width while the highlight moves. The screen width caps it.
func (m Model) innerWidth() int {
	w := minInnerWidth
	for _, e := range m.entries {
		w = max(w, entryWidth(e, m.opts.ChildGlyph))
		if e.Hint != "" {
			w = max(w, lipgloss.Width(render.Sanitize(e.Hint)))
		}
	}
	if m.hasHeader() {
		w = max(w, m.headerWidth())
	}
	if m.Width() > 0 {
		w = min(w, max(m.Width()-ui.BorderWidth, 1))
	}
	return w
}

func entryWidth(e Entry, childGlyph string) int {
	w := lipgloss.Width(render.Sanitize(e.Label))
	if e.Icon != "" {
		w += lipgloss.Width(e.Icon) + 1
	}
	if e.HasChildren {
		w += lipgloss.Width(childGlyph) + 1
	}
	return w
}

func (m Model) headerWidth() int {
	w := lipgloss.Width(render.Sanitize(m.opts.Heading))
	if m.opts.ShowBack {
		w += lipgloss.Width(m.opts.BackGlyph) + 1
	}
	if !m.opts.NoCloseIcon {
		w += lipgloss.Width(m.opts.CloseGlyph) + 1
	}
	return w
}

func (m Model) header(inner int) header {
	s := styles.T().S()
	h := header{closeAt: -1, backAt: -1}
	closeW := lipgloss.Width(m.opts.CloseGlyph)
	showClose := !m.opts.NoCloseIcon

	var b strings.Builder
	col := 0
	if showClose && m.opts.CloseIconLeft {
		h.closeAt = col
		b.WriteString(s.Muted.Render(m.opts.CloseGlyph) + " ")
		col += closeW + 1
	}
	if m.opts.ShowBack {
		h.backAt = col
		b.WriteString(s.Muted.Render(m.opts.BackGlyph) + " ")
		col += lipgloss.Width(m.opts.BackGlyph) + 1
	}

	room := inner - col
	if showClose && !m.opts.CloseIconLeft {
		room -= closeW + 1
	}
	title := render.Truncate(m.opts.Heading, room)
	if title != "" {
		t := styles.T()
		b.WriteString(styles.ApplyGradient(title, t.Primary, t.Secondary))
	}

	if showClose && !m.opts.CloseIconLeft {
		h.closeAt = inner - closeW
		h.line = render.Row(b.String(), s.Muted.Render(m.opts.CloseGlyph), inner)
		return h
	}
	h.line = render.Pad(b.String(), inner)
	return h
}

func (m Model) entryLine(e Entry, highlighted bool, inner int) string {
	s := styles.T().S()

	room := inner
	iconPart := ""
	if e.Icon != "" {
		iconPart = e.Icon + " "
		room -= lipgloss.Width(iconPart)
	}
	child := ""
	if e.HasChildren {
		child = m.opts.ChildGlyph
		room -= lipgloss.Width(child) + 1
	}
	label := render.Truncate(e.Label, max(room, 0))

	if highlighted {
		style := s.Cursor
		if e.Disabled {
			style = style.Foreground(styles.T().FgSubtle)
		}
		text := render.Row(iconPart+label, child, inner)
		if child == "" {
			text = render.Pad(iconPart+label, inner)
		}
		return style.Render(text)
	}

	textStyle := s.Base
	iconStyle := lipgloss.NewStyle().Foreground(e.Color)
	if e.Disabled {
		textStyle = s.Disabled
		iconStyle = s.Disabled
	}
	left := textStyle.Render(label)
	if iconPart != "" {
		left = iconStyle.Render(e.Icon) + " " + left
	}
	if child == "" {
		return render.Pad(left, inner)
	}
	return render.Row(left, s.Muted.Render(child), inner)
}
