// Package headerbar renders the one-line title bar of the demo host with
// the available languages as tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/actionbar/internal/ui/render"
	"github.com/llehouerou/actionbar/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// minWidth is the narrowest terminal the header still draws in.
const minWidth = 20

// Render returns the header for the given width: the title on the left
// and one tab per language on the right, the current one highlighted.
func Render(title string, langs []string, current string, width int) string {
	if width < minWidth {
		return ""
	}
	s := styles.T().S()

	parts := make([]string, 0, len(langs))
	for _, lang := range langs {
		tag := strings.ToUpper(lang)
		if lang == current {
			parts = append(parts, s.Title.Foreground(styles.T().Primary).Render(tag))
		} else {
			parts = append(parts, s.Muted.Render(tag))
		}
	}
	tabs := strings.Join(parts, s.Subtle.Render(" │ "))

	tabsWidth := lipgloss.Width(tabs)
	titleWidth := width - tabsWidth - 1
	if titleWidth < 1 {
		return render.Pad(tabs, width)
	}
	left := s.Title.Render(render.Truncate(title, titleWidth))
	gap := width - lipgloss.Width(left) - tabsWidth
	return left + strings.Repeat(" ", max(gap, 1)) + tabs
}
