// Package hostinput defines host pointer injection and permission interfaces.
package hostinput

import "errors"

// ErrNoSettingsSurface indicates the platform has no grant workflow to open.
var ErrNoSettingsSurface = errors.New("no input permission settings surface on this platform")

// Authorizer reports whether the process may control the pointer.
// Trusted is advisory and must be re-queried before every injection:
// the grant can be revoked while the server is running.
type Authorizer interface {
	Trusted() bool
	// OpenSettings opens the OS surface where the user grants the
	// input-control permission.
	OpenSettings() error
}
