// Package actionbar renders a toolbar of primary action buttons with an
// overflow menu for the rest, driven by a toolbar.Toolbar.
package actionbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/icons"
	"github.com/llehouerou/actionbar/internal/locale"
	"github.com/llehouerou/actionbar/internal/toolbar"
	"github.com/llehouerou/actionbar/internal/ui"
	"github.com/llehouerou/actionbar/internal/ui/overflow"
	"github.com/llehouerou/actionbar/internal/ui/popup"
	"github.com/llehouerou/actionbar/internal/ui/styles"
)

// Model is the toolbar component.
type Model struct {
	ui.Base
	bar   *toolbar.Toolbar
	menu  overflow.Model
	loc   *locale.Localizer
	icons icons.Set
	keys  KeyMap
	help  help.Model
	opts  Options

	focus   int    // index into the button zones
	pressed string // button showing press feedback
	seq     int    // feedback generation, stale ticks are dropped

	screenW, screenH int

	lastOpened bool
}

// zone is a clickable button cell on the bar, in columns relative to the
// component's left edge.
type zone struct {
	name    string
	x, w    int
	trigger bool
}

// New creates a toolbar component. A nil localizer falls back to labels and
// names; a nil icon set uses the ASCII set.
func New(in toolbar.Inputs, loc *locale.Localizer, set icons.Set, opts Options) Model {
	if loc == nil {
		loc = locale.New(nil, "")
	}
	if set == nil {
		set = icons.ForStyle(string(icons.StyleNone))
	}
	m := Model{
		bar: toolbar.New(in,
			toolbar.WithFeedback(opts.Feedback > 0),
			toolbar.WithTitle(opts.Title),
		),
		menu:  overflow.New(),
		loc:   loc,
		icons: set,
		keys:  DefaultKeyMap,
		help:  help.New(),
		opts:  opts,
	}
	m.SetFocused(true)
	m.sync()
	return m
}

// Toolbar exposes the underlying controller.
func (m Model) Toolbar() *toolbar.Toolbar {
	return m.bar
}

// SetActions replaces the action catalog.
func (m *Model) SetActions(actions toolbar.Catalog) {
	m.bar.SetActions(actions)
	m.sync()
}

// SetHidden replaces the hidden action names.
func (m *Model) SetHidden(names []string) {
	m.bar.SetHidden(names)
	m.sync()
}

// SetDisabled replaces the disabled actions and their reasons.
func (m *Model) SetDisabled(d toolbar.Disabled) {
	m.bar.SetDisabled(d)
	m.sync()
}

// SetPrimary replaces the primary action names.
func (m *Model) SetPrimary(names []string) {
	m.bar.SetPrimary(names)
	m.sync()
}

// SetSemiPrimary replaces the actions promoted while the pointer hovers the bar.
func (m *Model) SetSemiPrimary(names []string) {
	m.bar.SetSemiPrimary(names)
	m.sync()
}

// SetOpened opens or closes the menu on behalf of the host. No OpenChanged
// is reported for host-driven changes.
func (m *Model) SetOpened(opened bool) {
	m.bar.SetOpened(opened)
	m.menu.ClearSelection()
	m.sync()
	m.lastOpened = m.bar.Opened()
}

// Opened reports whether the menu is open.
func (m Model) Opened() bool {
	return m.bar.Opened()
}

// SetLanguage switches the display language.
func (m *Model) SetLanguage(lang string) {
	m.loc.SetLanguage(lang)
	m.sync()
}

// Language returns the language labels are shown in.
func (m Model) Language() string {
	return m.loc.Language()
}

// SetIcons replaces the icon set.
func (m *Model) SetIcons(set icons.Set) {
	m.icons = set
	m.sync()
}

// SetOptions replaces the cosmetic options.
func (m *Model) SetOptions(opts Options) {
	m.opts = opts
	m.bar.SetFeedback(opts.Feedback > 0)
	m.bar.SetTitle(opts.Title)
	m.sync()
}

// Options returns the cosmetic options.
func (m Model) Options() Options {
	return m.opts
}

// SetKeyMap replaces the bar bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// SetOrigin records where the bar is drawn on screen so that mouse events
// can be hit-tested.
func (m *Model) SetOrigin(x, y int) {
	m.Base.SetOrigin(x, y)
	m.sync()
}

// SetSize sets the width of the bar row.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.sync()
}

// SetScreenSize sets the area the menu may cover.
func (m *Model) SetScreenSize(width, height int) {
	m.screenW = width
	m.screenH = height
	m.sync()
}

// Pressed returns the button currently showing press feedback.
func (m Model) Pressed() string {
	return m.pressed
}

// Focused returns the name of the keyboard-focused button. The menu trigger
// is reported as "".
func (m Model) Focused() string {
	zones, _ := m.layout()
	if m.focus < 0 || m.focus >= len(zones) {
		return ""
	}
	return zones[m.focus].name
}

func (m Model) glyph(a toolbar.Action) string {
	if a.Icon == "" {
		return icons.Fallback(a.Name)
	}
	return m.icons.Glyph(a.Icon)
}

func (m Model) triggerGlyph() string {
	id := m.opts.TriggerIcon
	if id == "" {
		id = icons.MoreVert
	}
	return m.icons.Glyph(id)
}

func (m Model) layout() (zones []zone, total int) {
	view := m.bar.View()
	x := 0
	for i, it := range view.Primary {
		if i > 0 {
			x += m.opts.ButtonGap
		}
		w := lipgloss.Width(m.glyph(it.Action)) + 2
		zones = append(zones, zone{name: it.Name, x: x, w: w})
		x += w
	}
	if len(view.Secondary) > 0 {
		if len(zones) > 0 {
			x += m.opts.ButtonGap
		}
		w := lipgloss.Width(m.triggerGlyph()) + 2
		zones = append(zones, zone{x: x, w: w, trigger: true})
		x += w
	}
	if m.opts.AlignRight && m.Width() > x {
		off := m.Width() - x
		for i := range zones {
			zones[i].x += off
		}
	}
	return zones, x
}

// zoneAt returns the button under screen position x, y.
func (m Model) zoneAt(x, y int) (zone, int, bool) {
	lx, ly := m.Local(x, y)
	if ly != 0 {
		return zone{}, -1, false
	}
	zones, _ := m.layout()
	for i, z := range zones {
		if lx >= z.x && lx < z.x+z.w {
			return z, i, true
		}
	}
	return zone{}, -1, false
}

// onBar reports whether screen position x, y lies on the bar row.
func (m Model) onBar(x, y int) bool {
	lx, ly := m.Local(x, y)
	if ly != 0 {
		return false
	}
	_, total := m.layout()
	return lx >= 0 && lx < max(m.Width(), total)
}

// item finds a visible primary or menu item by name.
func (m Model) item(name string) (toolbar.Item, bool) {
	view := m.bar.View()
	for _, bucket := range [][]toolbar.Item{view.Primary, view.Secondary, m.bar.MenuActions()} {
		for _, it := range bucket {
			if it.Name == name {
				return it, true
			}
		}
	}
	return toolbar.Item{}, false
}

// sync rebuilds the menu entries and placement from the toolbar state.
func (m *Model) sync() {
	zones, _ := m.layout()
	m.focus = min(max(m.focus, 0), max(len(zones)-1, 0))

	_, originY := m.Origin()
	m.menu.SetSize(m.screenW, max(m.screenH-originY-1, 0))
	if !m.bar.Opened() {
		m.menu.SetEntries(nil, overflow.Options{})
		return
	}
	m.menu.SetEntries(m.menuEntries(), m.menuOptions())
	m.menu.SetOrigin(m.MenuPosition())
}

func (m Model) menuEntries() []overflow.Entry {
	t := styles.T()
	items := m.bar.MenuActions()
	entries := make([]overflow.Entry, 0, len(items))
	for _, it := range items {
		e := overflow.Entry{
			Key:         it.Name,
			Label:       m.loc.Title(it.Action),
			Color:       t.ResolveColor(it.IconColor),
			Disabled:    it.Disabled,
			Hint:        it.Tooltip,
			HasChildren: it.Expandable(),
		}
		if it.Icon != "" {
			e.Icon = m.icons.Glyph(it.Icon)
		}
		if it.Disabled {
			e.Hint = m.loc.DisabledReason(it)
		}
		entries = append(entries, e)
	}
	return entries
}

func (m Model) menuOptions() overflow.Options {
	return overflow.Options{
		Level:         m.bar.OpenSubmenu(),
		Heading:       m.bar.MenuHeading(),
		CloseGlyph:    m.icons.Glyph(icons.Close),
		BackGlyph:     m.icons.Glyph(icons.Back),
		ChildGlyph:    m.icons.Glyph(icons.Submenu),
		CloseIconLeft: m.opts.CloseIconLeft,
		NoCloseIcon:   m.opts.NoCloseIcon,
		ShowBack:      m.bar.OpenSubmenu() != "",
		MaxHeight:     m.opts.MaxMenuHeight,
	}
}

// MenuPosition returns the screen position of the menu's top-left corner.
// The menu opens below the button it belongs to: the expandable primary
// button for a submenu opened from the bar, the trigger otherwise.
func (m Model) MenuPosition() (x, y int) {
	zones, total := m.layout()
	anchor := zone{x: max(total, m.Width()) - 1, w: 1}
	for _, z := range zones {
		if z.trigger {
			anchor = z
		}
	}
	if sub := m.bar.OpenSubmenu(); sub != "" {
		for _, z := range zones {
			if z.name == sub {
				anchor = z
			}
		}
	}

	boxW, _ := m.menu.BoxSize()
	originX, originY := m.Origin()
	screenW := m.screenW
	if screenW == 0 {
		screenW = originX + max(m.Width(), total)
	}
	ax := originX + anchor.x
	alignRight := m.opts.AlignRight
	if alignRight {
		ax += anchor.w - 1
	}
	return popup.Anchor(ax, boxW, screenW, alignRight), originY + 1
}
