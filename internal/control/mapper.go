// Package control translates trackpad events into host input actions.
package control

import (
	"math"

	"github.com/airpad-labs/airpad/internal/display"
)

// NormToScreen maps a normalized position onto a display's pixel bounds.
// Inputs are not clamped: out-of-range values land off-target.
func NormToScreen(xn, yn float64, b display.Bounds) (int, int) {
	x := b.X + normToPixels(xn, b.W)
	y := b.Y + normToPixels(yn, b.H)
	return x, y
}

func normToPixels(norm float64, span int) int {
	return int(math.Round(norm * float64(span)))
}

// ScrollDelta truncates a raw delta pair to integer host scroll units.
// No normalization is applied; the sending device's units pass through.
func ScrollDelta(p, q float64) (int, int) {
	return int(p), int(q)
}
