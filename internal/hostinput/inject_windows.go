//go:build windows

// Package hostinput defines host pointer injection and permission interfaces.
package hostinput

import (
	"fmt"

	"github.com/lxn/win"
)

// WinInjector injects pointer input using WinAPI SendInput.
type WinInjector struct{}

// NewInjector returns a Windows pointer injector.
func NewInjector() Injector {
	return &WinInjector{}
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (w *WinInjector) MoveAbs(x, y int) error {
	dx, dy := mapAbsolute(x, y)
	flags := uint32(win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK)
	if err := sendMouseInput(flags, dx, dy, 0); err != nil {
		if win.SetCursorPos(int32(x), int32(y)) {
			return nil
		}
		return err
	}
	win.SetCursorPos(int32(x), int32(y))
	return nil
}

// LeftDown presses the left mouse button.
func (w *WinInjector) LeftDown() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTDOWN, 0, 0, 0)
}

// LeftUp releases the left mouse button.
func (w *WinInjector) LeftUp() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTUP, 0, 0, 0)
}

// Scroll issues wheel actions for both axes. Deltas are forwarded raw in
// pixel-equivalent units so continuous scrolling stays smooth.
func (w *WinInjector) Scroll(dx, dy int) error {
	if dx != 0 {
		if err := sendMouseInput(win.MOUSEEVENTF_HWHEEL, 0, 0, uint32(int32(dx))); err != nil {
			return err
		}
	}
	if dy != 0 {
		return sendMouseInput(win.MOUSEEVENTF_WHEEL, 0, 0, uint32(int32(dy)))
	}
	return nil
}

// CursorPos reports the current cursor location.
func (w *WinInjector) CursorPos() (int, int, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, fmt.Errorf("GetCursorPos failed: error %d", win.GetLastError())
	}
	return int(pt.X), int(pt.Y), nil
}

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, dx, dy int32, data uint32) error {
	input := win.INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			Dx:        dx,
			Dy:        dy,
			MouseData: data,
			DwFlags:   flags,
		},
	}
	if win.SendInput(1, &input, int32(win.SizeofINPUT)) != 1 {
		return fmt.Errorf("SendInput failed: error %d", win.GetLastError())
	}
	return nil
}

// mapAbsolute converts screen coordinates to the WinAPI absolute range.
func mapAbsolute(x, y int) (int32, int32) {
	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	if vw <= 1 {
		vw = 2
	}
	if vh <= 1 {
		vh = 2
	}
	dx := (int64(x) - int64(vx)) * 65535 / int64(vw-1)
	dy := (int64(y) - int64(vy)) * 65535 / int64(vh-1)
	return int32(dx), int32(dy)
}
