package testutil

import tea "github.com/charmbracelet/bubbletea"

// ModelHarness drives a tea.Model the way the bubbletea runtime would,
// keeping the model returned by each Update.
type ModelHarness[M tea.Model] struct {
	recorder
	model M
}

// NewModelHarness wraps m and captures its init command.
func NewModelHarness[M tea.Model](m M) *ModelHarness[M] {
	h := &ModelHarness[M]{model: m}
	h.add(m.Init())
	return h
}

// Model returns the current model.
func (h *ModelHarness[M]) Model() M {
	return h.model
}

// View renders the current model.
func (h *ModelHarness[M]) View() string {
	return h.model.View()
}

// Send delivers msg and returns the resulting command. It panics if Update
// returns a model of another type, which would be a bug in the component.
func (h *ModelHarness[M]) Send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(M)
	return h.add(cmd)
}

// SendKey simulates typing the given runes.
func (h *ModelHarness[M]) SendKey(key string) tea.Cmd {
	return h.Send(Runes(key))
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *ModelHarness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Click sends a left-button press at screen position x, y.
func (h *ModelHarness[M]) Click(x, y int) tea.Cmd {
	return h.Send(Press(x, y))
}

// Hover sends pointer motion to screen position x, y.
func (h *ModelHarness[M]) Hover(x, y int) tea.Cmd {
	return h.Send(Motion(x, y))
}

// Run sends msg and then feeds every message its command produces back
// into the model until no command remains. Batches are unrolled. Returns
// all messages that were delivered after msg.
func (h *ModelHarness[M]) Run(msg tea.Msg) []tea.Msg {
	var delivered []tea.Msg
	queue := []tea.Cmd{h.Send(msg)}
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		next := ExecuteCmd(cmd)
		if next == nil {
			continue
		}
		if batch, ok := next.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		delivered = append(delivered, next)
		queue = append(queue, h.Send(next))
	}
	return delivered
}
