// Package hostinput defines host pointer injection and permission interfaces.
package hostinput

// Injector defines the pointer operations used by the control layer.
// Implementations synthesize input the host OS treats as if a physical
// device produced it.
type Injector interface {
	// MoveAbs moves the cursor to an absolute virtual-desktop coordinate.
	MoveAbs(x, y int) error
	// LeftDown presses the left mouse button at the current location.
	LeftDown() error
	// LeftUp releases the left mouse button at the current location.
	LeftUp() error
	// Scroll issues one wheel action with pixel-unit deltas on both axes.
	Scroll(dx, dy int) error
	// CursorPos reports the current cursor location.
	CursorPos() (x, y int, err error)
}
