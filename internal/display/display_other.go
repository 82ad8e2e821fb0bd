//go:build !windows

// Package display queries host display geometry.
package display

import (
	"fmt"

	"github.com/kbinani/screenshot"
)

// Primary returns the primary display bounds. Display 0 is the primary
// on every platform screenshot supports.
func Primary() (Bounds, error) {
	if screenshot.NumActiveDisplays() <= 0 {
		return Bounds{}, fmt.Errorf("no displays detected")
	}
	r := screenshot.GetDisplayBounds(0)
	return Bounds{
		X: r.Min.X,
		Y: r.Min.Y,
		W: r.Dx(),
		H: r.Dy(),
	}, nil
}
