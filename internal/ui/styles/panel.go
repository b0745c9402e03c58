package styles

import "github.com/charmbracelet/lipgloss"

// MenuBox returns the bordered style for an overflow menu. focused selects
// the accent border used while the menu owns the keyboard.
func MenuBox(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}
