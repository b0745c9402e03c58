package app

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/errmsg"
	"github.com/llehouerou/actionbar/internal/state"
	"github.com/llehouerou/actionbar/internal/ui/action"
	"github.com/llehouerou/actionbar/internal/ui/actionbar"
	"github.com/llehouerou/actionbar/internal/ui/confirm"
	"github.com/llehouerou/actionbar/internal/ui/headerbar"
	"github.com/llehouerou/actionbar/internal/ui/layout"
)

// recordRow is the screen row of the sample record and its action bar.
const recordRow = headerbar.Height + 1

// clearActivityContext tags the confirmation asked before clearing the log.
const clearActivityContext = "clear-activity"

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case action.Msg:
		return m.handleAction(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.Confirm.Active() {
			return m, nil
		}
		return m.updateBar(msg)
	}

	// feedback ticks and anything else the bar schedules for itself
	return m.updateBar(msg)
}

func (m Model) updateBar(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Bar, cmd = m.Bar.Update(msg)
	return m, cmd
}

func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case actionbar.Source:
		switch a := msg.Action.(type) {
		case actionbar.Triggered:
			m.record(a)
		case actionbar.OpenChanged:
			slog.Debug("menu toggled", "opened", a.Opened)
		}
		return m, nil
	case confirm.Source:
		if res, ok := msg.Action.(confirm.Result); ok {
			m.handleConfirmResult(res)
		}
		return m, nil
	}
	return m.updateBar(msg)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.Confirm.Active() {
		_, cmd := m.Confirm.Update(msg)
		return m, cmd
	}
	if !m.Bar.Opened() {
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.Keys.Language):
			m.cycleLanguage()
			return m, nil
		case key.Matches(msg, m.Keys.Clear):
			m.Confirm.Show("Clear activity?", "Every recorded dispatch is removed.",
				clearActivityContext, min(m.Width, 48), 7)
			return m, nil
		}
	}
	return m.updateBar(msg)
}

// record stores a dispatched action in the activity log.
func (m *Model) record(t actionbar.Triggered) {
	label := t.Name
	if a, ok := m.Bar.Toolbar().Inputs().Actions.Find(t.Name); ok {
		label = m.Loc.Title(a)
	}
	e := state.Entry{
		Name:   t.Name,
		Source: t.Via.String(),
		Label:  label,
		At:     m.Now(),
	}
	slog.Info("action dispatched", "action", e.Name, "via", e.Source)
	m.LastEvent = e.Label + " (" + e.Name + ") via " + e.Source

	if m.StateMgr == nil {
		m.Activity = append([]state.Entry{e}, m.Activity...)
		if len(m.Activity) > recentLimit {
			m.Activity = m.Activity[:recentLimit]
		}
		return
	}
	if err := m.StateMgr.RecordDispatch(e); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpStateRecord, err)
		slog.Error("record dispatch", "action", e.Name, "error", err)
		return
	}
	m.ErrorMsg = ""
	m.loadActivity()
}

func (m *Model) cycleLanguage() {
	lang := m.Loc.Next()
	m.Bar.SetLanguage(lang)
	if m.StateMgr != nil {
		m.StateMgr.SaveLanguage(lang)
	}
	slog.Info("language changed", "language", lang)
}

func (m *Model) handleConfirmResult(res confirm.Result) {
	if !res.Confirmed || res.Context != clearActivityContext {
		return
	}
	if m.StateMgr != nil {
		if err := m.StateMgr.ClearActivity(); err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpStateClear, err)
			slog.Error("clear activity", "error", err)
			return
		}
	}
	m.Activity = nil
	m.ErrorMsg = ""
	slog.Info("activity cleared")
}

// resize lays the bar out on the record row, after the record label.
func (m *Model) resize() {
	barWidth := layout.BarWidth(m.Width, lipgloss.Width(m.Record))
	m.Bar.SetSize(barWidth, 1)
	m.Bar.SetOrigin(m.Width-barWidth, recordRow)
	m.Bar.SetScreenSize(m.Width, m.Height)
}
