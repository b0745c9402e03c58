package ui

// Base carries the state every component of the bar needs: its size, focus
// and where it sits on screen. Embed it in component models.
//
//	type Model struct {
//	    ui.Base
//	    entries []Entry
//	}
//
// Components that override SetSize or SetOrigin must call the embedded method.
type Base struct {
	width, height    int
	originX, originY int
	focused          bool
}

// SetFocused sets whether the component receives keys.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the component receives keys.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// SetOrigin records the screen cell of the component's top-left corner.
func (b *Base) SetOrigin(x, y int) {
	b.originX = x
	b.originY = y
}

// Origin returns the screen cell of the component's top-left corner.
func (b Base) Origin() (x, y int) {
	return b.originX, b.originY
}

// Local converts a screen position into component coordinates. The result
// may be negative or beyond the component's size.
func (b Base) Local(x, y int) (lx, ly int) {
	return x - b.originX, y - b.originY
}
