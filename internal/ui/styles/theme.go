package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and pre-built styles for the toolbar.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - focused button, menu highlight
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Menu background
	BgCursor lipgloss.Color // Focused button / highlighted entry

	// Borders
	Border      lipgloss.Color // Menu border
	BorderFocus lipgloss.Color // Menu border while keyboard-focused

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Cursor   lipgloss.Style // Focused button / highlighted entry
	Pressed  lipgloss.Style // Button during press feedback
	Disabled lipgloss.Style // Disabled button or entry
	Hint     lipgloss.Style // Tooltip and key hints
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Pressed: lipgloss.NewStyle().
			Background(t.Primary).
			Foreground(t.BgBase).
			Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(Dim(t.FgMuted)),
		Hint:     lipgloss.NewStyle().Foreground(t.FgMuted).Italic(true),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
	}
}

// Token returns the theme colour registered under a token name such as
// "primary" or "--primary".
func (t *Theme) Token(name string) (lipgloss.Color, bool) {
	switch strings.TrimPrefix(name, "--") {
	case "primary":
		return t.Primary, true
	case "secondary":
		return t.Secondary, true
	case "base", "fg":
		return t.FgBase, true
	case "muted":
		return t.FgMuted, true
	case "subtle":
		return t.FgSubtle, true
	case "success":
		return t.Success, true
	case "error", "danger":
		return t.Error, true
	case "warning":
		return t.Warning, true
	default:
		return "", false
	}
}

// ResolveColor turns an action's icon colour into a terminal colour.
// References starting with "--" name a theme token; anything else is used as
// a raw colour. Empty or unknown references yield the base foreground.
func (t *Theme) ResolveColor(ref string) lipgloss.Color {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return t.FgBase
	}
	if strings.HasPrefix(ref, "-") {
		if c, ok := t.Token(ref); ok {
			return c
		}
		return t.FgBase
	}
	return lipgloss.Color(ref)
}
