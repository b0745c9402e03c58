// Package overflow provides the dropdown menu that lists secondary toolbar
// actions and the items of an opened submenu.
package overflow

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/ui"
	"github.com/llehouerou/actionbar/internal/ui/cursor"
	"github.com/llehouerou/actionbar/internal/ui/popup"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Entry is one menu row. Glyphs and colours are already resolved.
type Entry struct {
	Key         string
	Label       string
	Icon        string
	Color       lipgloss.Color
	Disabled    bool
	Hint        string // shown under the entries while highlighted
	HasChildren bool
}

// Options configures the menu chrome for one level.
type Options struct {
	Level         string // identifies the level; changing it resets the cursor
	Heading       string
	CloseGlyph    string
	BackGlyph     string
	ChildGlyph    string
	CloseIconLeft bool
	NoCloseIcon   bool
	ShowBack      bool
	MaxHeight     int // visible entries, 0 shows all that fit
}

// Model is the overflow menu.
type Model struct {
	ui.Base
	keys     KeyMap
	entries  []Entry
	opts     Options
	cursor   cursor.Cursor
	selected string
}

// New creates an empty overflow menu.
func New() Model {
	m := Model{keys: DefaultKeyMap, cursor: cursor.New(true)}
	m.SetFocused(true)
	return m
}

// SetKeyMap replaces the key bindings.
func (m *Model) SetKeyMap(keys KeyMap) {
	m.keys = keys
}

// KeyMap returns the key bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// SetEntries replaces the displayed entries. The highlight is kept when the
// level is unchanged and reset otherwise.
func (m *Model) SetEntries(entries []Entry, opts Options) {
	levelChanged := opts.Level != m.opts.Level
	m.entries = entries
	m.opts = opts
	if levelChanged {
		m.cursor.Reset()
	}
	m.cursor.Clamp(len(m.entries), m.windowHeight())
}

// Entries returns the displayed entries.
func (m Model) Entries() []Entry {
	return m.entries
}

// Options returns the current chrome options.
func (m Model) Options() Options {
	return m.opts
}

// Highlighted returns the entry under the cursor.
func (m Model) Highlighted() (Entry, bool) {
	if len(m.entries) == 0 {
		return Entry{}, false
	}
	return m.entries[m.cursor.Pos()], true
}

// Selected returns the key of the last chosen entry until ClearSelection.
func (m Model) Selected() string {
	return m.selected
}

// ClearSelection forgets the last chosen entry.
func (m *Model) ClearSelection() {
	m.selected = ""
}

func (m Model) hasHeader() bool {
	return m.opts.Heading != "" || m.opts.ShowBack || !m.opts.NoCloseIcon
}

func (m Model) headerRows() int {
	if m.hasHeader() {
		return 2
	}
	return 0
}

// windowHeight is the number of entry rows shown at once; 0 shows all.
func (m Model) windowHeight() int {
	h := m.opts.MaxHeight
	if m.Height() > 0 {
		// border, header and hint line
		avail := max(m.Height()-ui.BorderHeight-m.headerRows()-1, 1)
		if h <= 0 || h > avail {
			h = avail
		}
	}
	return h
}
