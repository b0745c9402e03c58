package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/actionbar/internal/state"
	"github.com/llehouerou/actionbar/internal/ui/headerbar"
	"github.com/llehouerou/actionbar/internal/ui/layout"
	"github.com/llehouerou/actionbar/internal/ui/popup"
	"github.com/llehouerou/actionbar/internal/ui/render"
	"github.com/llehouerou/actionbar/internal/ui/styles"
)

// bodyHeight counts the rows between the header and the activity entries:
// spacer, record row, status, spacer, last event, spacer, heading.
const bodyHeight = 7

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	s := styles.T().S()

	lines := []string{
		headerbar.Render(m.Title, m.Loc.Languages(), m.Loc.Language(), m.Width),
		"",
		m.renderRecordRow(),
		m.alignRight(m.Bar.StatusView()),
		"",
		m.renderLastEvent(),
		"",
		s.Title.Render("Recent activity"),
	}
	lines = append(lines, m.renderActivity()...)

	footer := []string{m.renderHelp()}
	if m.ErrorMsg != "" {
		footer = append([]string{s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))}, footer...)
	}
	for len(lines)+len(footer) < m.Height {
		lines = append(lines, "")
	}
	lines = append(lines, footer...)
	if len(lines) > m.Height {
		lines = lines[:m.Height]
	}

	screen := strings.Join(lines, "\n")
	screen = m.Bar.Overlay(screen, m.Width)
	if m.Confirm.Active() {
		box := m.Confirm.View()
		w, h := popup.Size(box)
		screen = popup.Overlay(screen, box, (m.Width-w)/2, max((m.Height-h)/2, 0), m.Width)
	}
	return screen
}

func (m Model) renderRecordRow() string {
	bar := m.Bar.View()
	if layout.IsNarrowMode(m.Width) {
		return bar
	}
	s := styles.T().S()
	labelWidth := m.Width - m.Bar.Width()
	return render.Pad(s.Base.Render(render.Truncate(m.Record, labelWidth)), labelWidth) + bar
}

func (m Model) alignRight(text string) string {
	w := lipgloss.Width(text)
	if w >= m.Width {
		return text
	}
	return strings.Repeat(" ", m.Width-w) + text
}

func (m Model) renderLastEvent() string {
	s := styles.T().S()
	event := s.Muted.Render("none yet")
	if m.LastEvent != "" {
		event = s.Success.Render(render.Sanitize(m.LastEvent))
	}
	return clip(s.Subtle.Render("Last event: ")+event, m.Width)
}

func (m Model) activityRows() int {
	errHeight := 0
	if m.ErrorMsg != "" {
		errHeight = 1
	}
	return layout.ActivityRows(m.Height, layout.ContentOpts{
		HeaderHeight: headerbar.Height,
		BodyHeight:   bodyHeight,
		FooterHeight: 1,
		ErrorHeight:  errHeight,
	})
}

func (m Model) renderActivity() []string {
	s := styles.T().S()
	rows := m.activityRows()
	if rows == 0 {
		return nil
	}
	if len(m.Activity) == 0 {
		return []string{s.Hint.Render("  No activity yet")}
	}

	labelWidth := 0
	for _, e := range m.Activity {
		labelWidth = max(labelWidth, lipgloss.Width(e.Label))
	}
	labelWidth = min(labelWidth, max(m.Width/2, 1))

	now := m.Now()
	out := make([]string, 0, min(rows, len(m.Activity)))
	for _, e := range m.Activity[:min(rows, len(m.Activity))] {
		out = append(out, clip(m.renderEntry(e, labelWidth, now.Sub(e.At) < 0), m.Width))
	}
	return out
}

func (m Model) renderEntry(e state.Entry, labelWidth int, future bool) string {
	s := styles.T().S()
	label := render.Pad(render.Truncate(e.Label, labelWidth), labelWidth)
	when := humanize.RelTime(e.At, m.Now(), "ago", "from now")
	if future {
		when = "just now"
	}
	return fmt.Sprintf("  %s  %s  %s",
		s.Base.Render(label),
		s.Muted.Render(fmt.Sprintf("%-8s", e.Source)),
		s.Subtle.Render(when),
	)
}

func (m Model) renderHelp() string {
	s := styles.T().S()
	if m.Confirm.Active() {
		return ""
	}
	parts := []string{m.Bar.HelpView()}
	if !m.Bar.Opened() {
		parts = append(parts, m.Help.View(m.Keys))
	}
	return clip(strings.Join(parts, s.Subtle.Render(" • ")), m.Width)
}

// clip shortens an already styled line to width cells.
func clip(s string, width int) string {
	return ansi.Truncate(s, max(width, 0), render.Ellipsis)
}
