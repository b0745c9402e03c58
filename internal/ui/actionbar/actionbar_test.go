package actionbar

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/actionbar/internal/icons"
	"github.com/llehouerou/actionbar/internal/locale"
	"github.com/llehouerou/actionbar/internal/toolbar"
	"github.com/llehouerou/actionbar/internal/ui/action"
	"github.com/llehouerou/actionbar/internal/ui/overflow"
	"github.com/llehouerou/actionbar/internal/ui/testutil"
)

func testInputs() toolbar.Inputs {
	return toolbar.Inputs{
		Actions: toolbar.Catalog{
			{Name: "OPEN", Icon: "open"},
			{Name: "ADD", Icon: "add", SubActionTitle: "Add where?", SubActions: []toolbar.Action{
				{Name: "ADD_TOP"},
				{Name: "ADD_BOTTOM"},
			}},
			{Name: "EDIT", Icon: "edit", Tooltip: "Edit the record"},
			{Name: "DELETE", Icon: "delete"},
			{Name: "DOWNLOAD", Icon: "download"},
		},
		Disabled:    toolbar.Disabled{"DELETE": ""},
		Primary:     []string{"OPEN", "EDIT"},
		SemiPrimary: []string{"DOWNLOAD"},
	}
}

func testResources() locale.Resources {
	return locale.Resources{
		"en": {
			"OPENTitle":             "Open",
			"ADDTitle":              "Add",
			"ADD_TOPTitle":          "Add on top",
			"ADD_BOTTOMTitle":       "Add at bottom",
			"EDITTitle":             "Edit",
			"DELETETitle":           "Delete",
			"DELETEDisabledTooltip": "Nothing to delete",
			"DOWNLOADTitle":         "Download",
		},
		"fr": {
			"ADDTitle":      "Ajouter",
			"DOWNLOADTitle": "Télécharger",
		},
	}
}

// Single-cell glyphs keep the geometry easy to reason about:
// OPEN [0,3) EDIT [4,7) trigger [8,13).
func testIcons() icons.Set {
	return icons.ForStyle(string(icons.StyleNone)).Merge(map[string]string{
		"open":     "O",
		"edit":     "E",
		"add":      "+",
		"delete":   "X",
		"download": "W",
	})
}

func newTestBar(opts Options) Model {
	opts.AlignRight = false
	if opts.ButtonGap == 0 {
		opts.ButtonGap = 1
	}
	m := New(testInputs(), locale.New(testResources(), "en"), testIcons(), opts)
	m.SetOrigin(0, 0)
	m.SetScreenSize(80, 24)
	return m
}

// run delivers msg and feeds the overflow menu's actions back into the bar,
// the way a host routes them. It returns the bar's own actions.
func run(m Model, msg tea.Msg) (Model, []action.Action) {
	var out []action.Action
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		var cmd tea.Cmd
		m, cmd = m.Update(queue[0])
		queue = queue[1:]
		for _, am := range testutil.Actions(cmd) {
			if am.Source == overflow.Source {
				queue = append(queue, am)
				continue
			}
			out = append(out, am.Action)
		}
	}
	return m, out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestView_PrimaryButtonsAndTrigger(t *testing.T) {
	m := newTestBar(Options{})

	view := testutil.StripANSI(m.View())
	assert.Equal(t, " O   E   ... ", view)
	assert.NotContains(t, view, "W")
}

func TestView_AlignRight(t *testing.T) {
	m := newTestBar(Options{})
	opts := m.Options()
	opts.AlignRight = true
	m.SetOptions(opts)
	m.SetSize(20, 1)

	view := testutil.StripANSI(m.View())
	assert.Equal(t, 20, lipgloss.Width(view))
	assert.Equal(t, strings.Repeat(" ", 7)+" O   E   ... ", view)
}

func TestView_NoTriggerWithoutSecondary(t *testing.T) {
	m := newTestBar(Options{})
	m.SetPrimary([]string{"OPEN", "ADD", "EDIT", "DELETE", "DOWNLOAD"})

	assert.NotContains(t, testutil.StripANSI(m.View()), "...")

	m, out := run(m, runes("."))
	assert.False(t, m.Opened())
	assert.Empty(t, out)
}

func TestClickPrimary_DispatchesImmediately(t *testing.T) {
	m := newTestBar(Options{})

	m, out := run(m, testutil.Press(1, 0))

	assert.Equal(t, []action.Action{Triggered{Name: "OPEN", Via: toolbar.SourceButton}}, out)
	assert.False(t, m.Opened())
}

func TestClickPrimary_DeferredUntilFeedbackEnds(t *testing.T) {
	m := newTestBar(Options{Feedback: time.Millisecond})

	m, cmd := m.Update(testutil.Press(1, 0))
	require.NotNil(t, cmd)
	assert.Equal(t, "OPEN", m.Pressed())
	assert.Contains(t, testutil.StripANSI(m.View()), "O")

	done := testutil.ExecuteCmd(cmd)
	require.IsType(t, feedbackDoneMsg{}, done)

	// other activations are dropped while feedback runs
	m, out := run(m, testutil.Press(5, 0))
	assert.Empty(t, out)

	m, out = run(m, done)
	assert.Equal(t, []action.Action{Triggered{Name: "OPEN", Via: toolbar.SourceButton}}, out)
	assert.Empty(t, m.Pressed())

	// a repeated tick does not dispatch twice
	_, out = run(m, done)
	assert.Empty(t, out)
}

func TestClickDisabledPrimary_Ignored(t *testing.T) {
	m := newTestBar(Options{})
	m.SetDisabled(toolbar.Disabled{"EDIT": "Read-only"})

	_, out := run(m, testutil.Press(5, 0))

	assert.Empty(t, out)
}

func TestKeyboard_FocusAndActivate(t *testing.T) {
	m := newTestBar(Options{})
	assert.Equal(t, "OPEN", m.Focused())

	m, _ = run(m, runes("l"))
	assert.Equal(t, "EDIT", m.Focused())
	assert.Contains(t, testutil.StripANSI(m.StatusView()), "Edit the record")

	m, out := run(m, enter)
	assert.Equal(t, []action.Action{Triggered{Name: "EDIT", Via: toolbar.SourceButton}}, out)

	m, _ = run(m, runes("l"))
	m, _ = run(m, runes("l"))
	assert.Empty(t, m.Focused(), "focus stops on the trigger")
	m, out = run(m, enter)
	assert.True(t, m.Opened())
	assert.Equal(t, []action.Action{OpenChanged{Opened: true}}, out)
}

func TestStatusView_DisabledReason(t *testing.T) {
	m := newTestBar(Options{})
	m.SetPrimary([]string{"DELETE"})

	status := testutil.StripANSI(m.StatusView())
	assert.Contains(t, status, "Delete")
	assert.Contains(t, status, "Nothing to delete")
}

func TestTrigger_TogglesMenu(t *testing.T) {
	m := newTestBar(Options{})

	m, out := run(m, testutil.Press(9, 0))
	assert.True(t, m.Opened())
	assert.Equal(t, []action.Action{OpenChanged{Opened: true}}, out)

	menu := testutil.StripANSI(m.MenuView())
	assert.Contains(t, menu, "Add")
	assert.Contains(t, menu, "Delete")
	assert.Contains(t, menu, "Download")
	assert.NotContains(t, menu, "Open")

	m, out = run(m, testutil.Press(9, 0))
	assert.False(t, m.Opened())
	assert.Equal(t, []action.Action{OpenChanged{Opened: false}}, out)
	assert.Empty(t, m.MenuView())
}

func TestMenu_KeyboardIntoSubmenu(t *testing.T) {
	m := newTestBar(Options{})

	m, out := run(m, runes("."))
	require.Equal(t, []action.Action{OpenChanged{Opened: true}}, out)

	m, out = run(m, enter)
	assert.Empty(t, out)
	assert.Equal(t, toolbar.OpenSubmenu, m.Toolbar().State())
	menu := testutil.StripANSI(m.MenuView())
	assert.Contains(t, menu, "Add where?")
	assert.Contains(t, menu, "Add on top")

	m, out = run(m, enter)
	assert.Equal(t, []action.Action{
		Triggered{Name: "ADD_TOP", Via: toolbar.SourceKeyboard},
		OpenChanged{Opened: false},
	}, out)
	assert.False(t, m.Opened())
	assert.Empty(t, m.Toolbar().Selected())
}

func TestMenu_BackReturnsToSecondary(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, runes("."))
	m, _ = run(m, enter)
	require.Equal(t, "ADD", m.Toolbar().OpenSubmenu())

	m, out := run(m, runes("h"))

	assert.Empty(t, out)
	assert.Equal(t, toolbar.OpenSecondary, m.Toolbar().State())
	assert.Contains(t, testutil.StripANSI(m.MenuView()), "Download")
}

func TestMenu_DisabledItemIgnored(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, runes("."))
	m, _ = run(m, down)

	assert.Contains(t, testutil.StripANSI(m.MenuView()), "Nothing to delete")

	m, out := run(m, enter)
	assert.Empty(t, out)
	assert.True(t, m.Opened())
	assert.Empty(t, m.Toolbar().Selected())
}

func TestMenu_EscapeCloses(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, runes("."))

	m, out := run(m, esc)

	assert.False(t, m.Opened())
	assert.Equal(t, []action.Action{OpenChanged{Opened: false}}, out)
}

func TestMenu_ClickEntry(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, testutil.Press(9, 0))

	x, y := m.MenuPosition()
	// border, heading and separator come before the entries
	m, out := run(m, testutil.Press(x+2, y+3+2))

	assert.Equal(t, []action.Action{
		Triggered{Name: "DOWNLOAD", Via: toolbar.SourceMenuItem},
		OpenChanged{Opened: false},
	}, out)
	assert.False(t, m.Opened())
}

func TestMenu_ClickOutsideCloses(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, testutil.Press(9, 0))

	m, out := run(m, testutil.Press(70, 20))

	assert.False(t, m.Opened())
	assert.Equal(t, []action.Action{OpenChanged{Opened: false}}, out)
}

func TestMenu_ClickPrimaryWhileOpenDispatches(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, testutil.Press(9, 0))

	m, out := run(m, testutil.Press(1, 0))

	assert.Equal(t, []action.Action{
		Triggered{Name: "OPEN", Via: toolbar.SourceButton},
		OpenChanged{Opened: false},
	}, out)
	assert.False(t, m.Opened())
}

func TestMenuPosition_AlignRightUnderTrigger(t *testing.T) {
	m := newTestBar(Options{})
	opts := m.Options()
	opts.AlignRight = true
	m.SetOptions(opts)
	m.SetSize(40, 1)
	m.SetOrigin(10, 2)
	m.SetOpened(true)

	x, y := m.MenuPosition()
	w, _ := lipgloss.Size(m.MenuView())

	assert.Equal(t, 3, y)
	assert.Equal(t, 10+40, x+w, "right edges line up")
}

func TestOverlay_DrawsMenuBelowBar(t *testing.T) {
	m := newTestBar(Options{})
	m.SetOpened(true)

	screen := m.Overlay(m.View()+"\n\n\n\n\n\n\n\n", 80)

	lines := testutil.SplitLines(testutil.StripANSI(screen))
	require.Greater(t, len(lines), 3)
	assert.Contains(t, lines[0], "O")
	assert.Contains(t, testutil.StripANSI(screen), "Download")
}

func TestHover_PromotesSemiPrimary(t *testing.T) {
	m := newTestBar(Options{})

	m, _ = run(m, testutil.Motion(1, 0))
	assert.Contains(t, testutil.StripANSI(m.View()), "W")
	assert.Equal(t, []string{"DOWNLOAD", "OPEN", "EDIT"}, toolbar.Names(m.Toolbar().View().Primary))

	m, _ = run(m, testutil.Motion(1, 5))
	assert.NotContains(t, testutil.StripANSI(m.View()), "W")
}

func TestHover_NoPromotionWhileMenuOpen(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, testutil.Press(9, 0))

	m, _ = run(m, testutil.Motion(1, 0))

	assert.Equal(t, []string{"OPEN", "EDIT"}, toolbar.Names(m.Toolbar().View().Primary))
	assert.Contains(t, testutil.StripANSI(m.MenuView()), "Download")
}

func TestSetOpened_NotEchoed(t *testing.T) {
	m := newTestBar(Options{})

	m.SetOpened(true)
	m, out := run(m, tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.True(t, m.Opened())
	assert.Empty(t, out)
}

func TestSetHidden_StaleSubmenuReported(t *testing.T) {
	m := newTestBar(Options{})
	m, _ = run(m, runes("."))
	m, _ = run(m, enter)
	require.Equal(t, "ADD", m.Toolbar().OpenSubmenu())

	m.SetHidden([]string{"ADD"})

	assert.False(t, m.Opened())
	msgs := testutil.Actions(m.Notify())
	require.Len(t, msgs, 1)
	assert.Equal(t, OpenChanged{Opened: false}, msgs[0].Action)
	assert.Nil(t, m.Notify())
}

func TestSetLanguage(t *testing.T) {
	m := newTestBar(Options{})
	m.SetOpened(true)

	m.SetLanguage("fr-CA")

	assert.Equal(t, "fr", m.Language())
	menu := testutil.StripANSI(m.MenuView())
	assert.Contains(t, menu, "Ajouter")
	assert.Contains(t, menu, "Télécharger")
	assert.Contains(t, menu, "DELETE", "missing translation falls back to the name")
}

func TestHelpView_FollowsMode(t *testing.T) {
	m := newTestBar(Options{})
	assert.Contains(t, m.HelpView(), "more actions")

	m.SetOpened(true)
	assert.Contains(t, m.HelpView(), "close")
}

func TestUnfocused_IgnoresKeys(t *testing.T) {
	m := newTestBar(Options{})
	m.SetFocused(false)

	m, out := run(m, runes("."))

	assert.False(t, m.Opened())
	assert.Empty(t, out)
	assert.Empty(t, m.StatusView())
}
