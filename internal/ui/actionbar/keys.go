package actionbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the bindings active while the menu is closed. The open menu
// uses the overflow bindings.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Menu     key.Binding
}

// DefaultKeyMap is the built-in binding set.
var DefaultKeyMap = KeyMap{
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "run"),
	),
	Menu: key.NewBinding(
		key.WithKeys(".", "m"),
		key.WithHelp(".", "more actions"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Activate, k.Menu}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right}, {k.Activate, k.Menu}}
}
