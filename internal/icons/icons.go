// Package icons maps symbolic icon identifiers to terminal glyphs.
package icons

import (
	"strings"
	"unicode/utf8"
)

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Identifiers used by the toolbar chrome itself.
const (
	MoreVert = "more_vert"
	Close    = "close"
	Back     = "back"
	Submenu  = "chevron_right"
)

// Set maps symbolic icon identifiers ("edit", "more_vert") to glyphs.
// A Set is injected into the components that render icons; there is no
// process-wide registry.
type Set map[string]string

var (
	nerdIcons = Set{
		MoreVert:   "\uf142", // nf-fa-ellipsis_v
		Close:      "\uf00d", // nf-fa-times
		Back:       "\uf060", // nf-fa-arrow_left
		Submenu:    "\uf054", // nf-fa-chevron_right
		"open":     "\uf07c", // nf-fa-folder_open
		"add":      "\uf067", // nf-fa-plus
		"edit":     "\uf044", // nf-fa-pencil_square_o
		"delete":   "\uf1f8", // nf-fa-trash
		"download": "\uf019", // nf-fa-download
		"archive":  "\uf187", // nf-fa-archive
		"payment":  "\uf09d", // nf-fa-credit_card
		"share":    "\uf1e0", // nf-fa-share_alt
		"up":       "\uf062", // nf-fa-arrow_up
		"down":     "\uf063", // nf-fa-arrow_down
	}

	unicodeIcons = Set{
		MoreVert:   "⋮",
		Close:      "✕",
		Back:       "←",
		Submenu:    "›",
		"open":     "📂",
		"add":      "＋",
		"edit":     "✎",
		"delete":   "🗑",
		"download": "⤓",
		"archive":  "🗄",
		"payment":  "💳",
		"share":    "⇪",
		"up":       "↑",
		"down":     "↓",
	}

	noneIcons = Set{
		MoreVert: "...",
		Close:    "x",
		Back:     "<",
		Submenu:  ">",
	}
)

// ForStyle returns a fresh copy of the built-in set for style. Unknown
// styles get the plain ASCII set.
func ForStyle(style string) Set {
	switch Style(style) {
	case StyleNerd:
		return nerdIcons.clone()
	case StyleUnicode:
		return unicodeIcons.clone()
	default:
		return noneIcons.clone()
	}
}

func (s Set) clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a copy of s with overrides applied on top.
func (s Set) Merge(overrides map[string]string) Set {
	out := s.clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// Glyph returns the glyph for id. Unknown identifiers render as their
// upper-cased first letter in brackets ("[E]" for "edit") so that an action
// without a known icon still gets a distinct button.
func (s Set) Glyph(id string) string {
	if g, ok := s[id]; ok {
		return g
	}
	return Fallback(id)
}

// Fallback is the bracketed initial used for unknown identifiers.
func Fallback(id string) string {
	// dotted legacy paths ("content.add") use their last segment
	if i := strings.LastIndexByte(id, '.'); i >= 0 {
		id = id[i+1:]
	}
	r, _ := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return "[?]"
	}
	return "[" + strings.ToUpper(string(r)) + "]"
}
