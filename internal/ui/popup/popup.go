// Package popup places floating boxes (dropdown menus, dialogs) over a
// rendered screen.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay draws box on top of base with its top-left corner at column x and
// row y. The box replaces base cells it covers, including spaces inside the
// box; rows and columns outside the screen are clipped. width is the screen
// width base lines are padded to. ANSI sequences on both sides are preserved.
func Overlay(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")

	if x < 0 {
		x = 0
	}
	for i, line := range boxLines {
		row := y + i
		if row < 0 {
			continue
		}
		for row >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		baseLines[row] = splice(baseLines[row], line, x, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces the columns [x, x+width(line)) of baseLine with line.
func splice(baseLine, line string, x, width int) string {
	lineWidth := ansi.StringWidth(line)
	if width > 0 && x+lineWidth > width {
		lineWidth = max(width-x, 0)
		line = ansi.Truncate(line, lineWidth, "")
	}
	if lineWidth == 0 {
		return baseLine
	}

	baseWidth := ansi.StringWidth(baseLine)
	if baseWidth < x+lineWidth {
		baseLine += strings.Repeat(" ", x+lineWidth-baseWidth)
		baseWidth = x + lineWidth
	}

	// When cutting through a wide character (like emoji), ansi.Cut may return
	// a shorter string. Pad to keep the box column-aligned.
	prefix := ansi.Cut(baseLine, 0, x)
	if w := ansi.StringWidth(prefix); w < x {
		prefix += strings.Repeat(" ", x-w)
	}

	result := prefix + line
	end := x + lineWidth
	if end < baseWidth {
		suffix := ansi.Cut(baseLine, end, baseWidth)
		expected := baseWidth - end
		switch w := ansi.StringWidth(suffix); {
		case w < expected:
			suffix = strings.Repeat(" ", expected-w) + suffix
		case w > expected:
			// wide char straddles the box edge; blank its visible half
			suffix = " " + ansi.Cut(suffix, w-expected+1, w)
		}
		result += suffix
	}
	return result
}

// Anchor computes where a box of boxWidth columns opens relative to an
// anchor cell. With alignRight the box's right edge lines up with the anchor;
// otherwise its left edge does. The result is clamped to the screen.
func Anchor(anchorX, boxWidth, screenWidth int, alignRight bool) int {
	x := anchorX
	if alignRight {
		x = anchorX - boxWidth + 1
	}
	if screenWidth > 0 && x+boxWidth > screenWidth {
		x = screenWidth - boxWidth
	}
	return max(x, 0)
}

// Size returns the rendered width and height of a box.
func Size(box string) (width, height int) {
	return lipgloss.Width(box), lipgloss.Height(box)
}
