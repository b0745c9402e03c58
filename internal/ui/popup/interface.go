package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for floating components such as the overflow
// menu. The owner routes messages to it while it is open and overlays its
// View on top of the screen.
type Popup interface {
	// Init returns any initial command.
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup including its border.
	View() string

	// SetSize sets the maximum dimensions available to the popup.
	SetSize(width, height int)
}
