//go:build windows

// Package display queries host display geometry.
package display

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// Primary returns the primary display bounds using WinAPI enumeration.
// If no monitor carries the primary flag the first enumerated one is used.
func Primary() (Bounds, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return Bounds{}, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if state.havePrimary {
		return state.primary, nil
	}
	if state.haveFirst {
		return state.first, nil
	}
	return Bounds{}, fmt.Errorf("no displays detected")
}

type enumState struct {
	primary     Bounds
	havePrimary bool
	first       Bounds
	haveFirst   bool
}

func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	monitorRect := info.RcMonitor
	b := Bounds{
		X: int(monitorRect.Left),
		Y: int(monitorRect.Top),
		W: int(monitorRect.Right - monitorRect.Left),
		H: int(monitorRect.Bottom - monitorRect.Top),
	}
	if !s.haveFirst {
		s.first = b
		s.haveFirst = true
	}
	if info.DwFlags&win.MONITORINFOF_PRIMARY != 0 {
		s.primary = b
		s.havePrimary = true
	}
	return 1
}
