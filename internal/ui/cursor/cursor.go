// Package cursor tracks the highlighted entry of a scrollable menu.
package cursor

// Cursor manages the highlight position and scroll offset of a menu.
// The entry count and window height are passed to methods rather than stored,
// since the menu content is recomputed whenever the toolbar inputs change.
type Cursor struct {
	pos    int // Highlighted entry (0-indexed)
	offset int // First visible entry
	wrap   bool
}

// New creates a cursor. With wrap set, moving past either end continues on
// the other side, which is how dropdown menus usually behave.
func New(wrap bool) Cursor {
	return Cursor{wrap: wrap}
}

// Pos returns the highlighted position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the highlight by delta within n entries and keeps it inside a
// window of height rows. No-op when n is 0.
func (c *Cursor) Move(delta, n, height int) {
	if n == 0 {
		return
	}
	pos := c.pos + delta
	if c.wrap {
		pos = ((pos % n) + n) % n
	} else {
		pos = clamp(pos, n-1)
	}
	c.pos = pos
	c.ensureVisible(n, height)
}

// Jump moves the highlight to pos, clamped to the entries.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		return
	}
	c.pos = clamp(pos, n-1)
	c.ensureVisible(n, height)
}

// Reset moves back to the first entry.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// Clamp keeps the cursor valid after the entry count changed.
func (c *Cursor) Clamp(n, height int) {
	if n == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(c.pos, n-1)
	c.ensureVisible(n, height)
}

func (c *Cursor) ensureVisible(n, height int) {
	if height <= 0 {
		c.offset = 0
		return
	}
	if c.pos < c.offset {
		c.offset = c.pos
	}
	if c.pos >= c.offset+height {
		c.offset = c.pos - height + 1
	}
	c.offset = clamp(c.offset, max(n-height, 0))
}

// VisibleRange returns the visible entry indices [start, end).
// A non-positive height shows everything.
func (c Cursor) VisibleRange(n, height int) (start, end int) {
	if n == 0 {
		return 0, 0
	}
	if height <= 0 {
		return 0, n
	}
	return c.offset, min(c.offset+height, n)
}

// At maps a row inside the visible window to an entry index. It reports
// false when the row does not hold an entry.
func (c Cursor) At(row, n, height int) (int, bool) {
	start, end := c.VisibleRange(n, height)
	idx := start + row
	if row < 0 || idx >= end {
		return 0, false
	}
	return idx, true
}

// HandleKey handles menu navigation keys and reports whether the key was
// consumed: j/down, k/up, g/home, G/end, pgdown, pgup.
func (c *Cursor) HandleKey(key string, n, height int) bool {
	switch key {
	case "j", "down", "tab":
		c.Move(1, n, height)
	case "k", "up", "shift+tab":
		c.Move(-1, n, height)
	case "g", "home":
		c.Jump(0, n, height)
	case "G", "end":
		c.Jump(n-1, n, height)
	case "pgdown":
		c.Jump(c.pos+max(height, 1), n, height)
	case "pgup":
		c.Jump(c.pos-max(height, 1), n, height)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
