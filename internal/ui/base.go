package ui

// Base provides common UI component functionality for focus, size and
// screen placement. Embed this in component models to get standard methods.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    ctrl *slider.Controller
//	}
type Base struct {
	width, height int
	x, y          int // screen origin of the top-left cell
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// SetOrigin records where the component is drawn on screen.
// Mouse messages carry screen coordinates, so hit testing needs it.
func (b *Base) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// Origin returns the screen position of the component's top-left cell.
func (b Base) Origin() (x, y int) {
	return b.x, b.y
}

// Contains reports whether the screen cell (x, y) lies inside the component.
func (b Base) Contains(x, y int) bool {
	return x >= b.x && x < b.x+b.width && y >= b.y && y < b.y+b.height
}
