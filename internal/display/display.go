// Package display queries host display geometry.
package display

// Bounds describes a display's origin and size in virtual-desktop pixels.
type Bounds struct {
	X int
	Y int
	W int
	H int
}

// Provider returns the current primary display bounds. It is queried
// fresh for every move translation so runtime display changes take
// effect without a restart.
type Provider func() (Bounds, error)
