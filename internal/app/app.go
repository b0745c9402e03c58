// Package app is the demo host: a sample record row carrying an action bar,
// the last dispatched event and the recent activity log.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/actionbar/internal/catalog"
	"github.com/llehouerou/actionbar/internal/errmsg"
	"github.com/llehouerou/actionbar/internal/icons"
	"github.com/llehouerou/actionbar/internal/locale"
	"github.com/llehouerou/actionbar/internal/state"
	"github.com/llehouerou/actionbar/internal/ui/actionbar"
	"github.com/llehouerou/actionbar/internal/ui/confirm"
)

const (
	// recentLimit is how many activity entries are kept on screen.
	recentLimit = 50

	defaultRecord = "Card #42 · Quarterly report"
)

// Model is the root application model.
type Model struct {
	Bar      actionbar.Model
	Confirm  confirm.Model
	StateMgr state.Interface // nil runs without persistence
	Loc      *locale.Localizer
	Keys     KeyMap
	Help     help.Model

	Title     string
	Record    string // label of the sample record row
	LastEvent string
	Activity  []state.Entry
	ErrorMsg  string

	Width  int
	Height int

	Now func() time.Time
}

// New creates the demo host for def. loc must be built from def's resources.
func New(def *catalog.Definition, loc *locale.Localizer, set icons.Set, opts actionbar.Options, stateMgr state.Interface) Model {
	m := Model{
		Bar:      actionbar.New(def.Inputs(), loc, set, opts),
		Confirm:  confirm.New(),
		StateMgr: stateMgr,
		Loc:      loc,
		Keys:     DefaultKeyMap,
		Help:     help.New(),
		Title:    def.Title,
		Record:   defaultRecord,
		Now:      time.Now,
	}
	m.loadActivity()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.Title == "" {
		return m.Bar.Init()
	}
	return tea.Batch(m.Bar.Init(), tea.SetWindowTitle(m.Title))
}

func (m *Model) loadActivity() {
	if m.StateMgr == nil {
		return
	}
	entries, err := m.StateMgr.Recent(recentLimit)
	if err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpStateRecent, err)
		slog.Error("load activity", "error", err)
		return
	}
	m.Activity = entries
}
