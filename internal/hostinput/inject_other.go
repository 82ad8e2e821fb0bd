//go:build !windows

// Package hostinput defines host pointer injection and permission interfaces.
package hostinput

import "github.com/go-vgo/robotgo"

// RobotInjector injects pointer input through robotgo (CGEvent on macOS,
// X11 on Linux).
type RobotInjector struct{}

// NewInjector returns a robotgo-backed pointer injector.
func NewInjector() Injector {
	return &RobotInjector{}
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (r *RobotInjector) MoveAbs(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// LeftDown presses the left mouse button.
func (r *RobotInjector) LeftDown() error {
	return robotgo.MouseDown("left")
}

// LeftUp releases the left mouse button.
func (r *RobotInjector) LeftUp() error {
	return robotgo.MouseUp("left")
}

// Scroll issues one two-axis wheel action. robotgo scrolls in pixel
// units, which preserves smooth scrolling from the handheld.
func (r *RobotInjector) Scroll(dx, dy int) error {
	robotgo.Scroll(dx, dy)
	return nil
}

// CursorPos reports the current cursor location.
func (r *RobotInjector) CursorPos() (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}
