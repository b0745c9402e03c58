package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/actionbar/internal/ui/popup"
)

// PopupHarness drives a popup.Popup the way its owner would, keeping the
// popup returned by each Update and the commands it produced.
type PopupHarness struct {
	recorder
	popup popup.Popup
}

// NewPopupHarness wraps p and captures its init command.
func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.add(p.Init())
	return h
}

// Popup returns the current popup.
func (h *PopupHarness) Popup() popup.Popup {
	return h.popup
}

// SetSize sets the area the popup may use.
func (h *PopupHarness) SetSize(width, height int) {
	h.popup.SetSize(width, height)
}

// View renders the popup.
func (h *PopupHarness) View() string {
	return h.popup.View()
}

// SendMsg delivers msg and returns the resulting command.
func (h *PopupHarness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.popup, cmd = h.popup.Update(msg)
	return h.add(cmd)
}

// SendKey simulates typing the given runes.
func (h *PopupHarness) SendKey(key string) tea.Cmd {
	return h.SendMsg(Runes(key))
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *PopupHarness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// SendEnter sends the enter key.
func (h *PopupHarness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *PopupHarness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// SendDown sends the down arrow key.
func (h *PopupHarness) SendDown() tea.Cmd {
	return h.SendSpecialKey(tea.KeyDown)
}

// Click sends a left-button press at screen position x, y.
func (h *PopupHarness) Click(x, y int) tea.Cmd {
	return h.SendMsg(Press(x, y))
}

// Hover sends pointer motion to screen position x, y.
func (h *PopupHarness) Hover(x, y int) tea.Cmd {
	return h.SendMsg(Motion(x, y))
}

// AssertViewContains returns an error message if the view lacks substr.
func (h *PopupHarness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns an error message if the view shows substr.
func (h *PopupHarness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
