// Package layout provides pure functions for the demo screen dimensions.
package layout

// NarrowThreshold is the terminal width below which the record label is
// dropped and the action bar takes the whole row.
const NarrowThreshold = 60

// LabelGap is the minimum space between the record label and the bar.
const LabelGap = 2

// ContentOpts contains the parameters needed to size the activity list.
type ContentOpts struct {
	HeaderHeight int
	BodyHeight   int // record row, status, last event and headings
	FooterHeight int // help line
	ErrorHeight  int // 0 when no error is shown
}

// ActivityRows calculates how many activity entries fit: the terminal
// height minus everything else on screen. Never negative.
func ActivityRows(windowHeight int, opts ContentOpts) int {
	rows := windowHeight
	rows -= opts.HeaderHeight
	rows -= opts.BodyHeight
	rows -= opts.FooterHeight
	rows -= opts.ErrorHeight
	return max(rows, 0)
}

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// BarWidth calculates the width left to the action bar on the record row
// once the label is drawn. In narrow mode the bar gets the full width.
func BarWidth(windowWidth, labelWidth int) int {
	if IsNarrowMode(windowWidth) {
		return windowWidth
	}
	return max(windowWidth-labelWidth-LabelGap, 0)
}
