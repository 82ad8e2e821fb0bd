//go:build !darwin

// Package hostinput defines host pointer injection and permission interfaces.
package hostinput

// OpenAuthorizer trusts the process unconditionally. Windows and X11
// accept synthetic input without a per-process grant.
type OpenAuthorizer struct{}

// NewAuthorizer returns the permissive authorizer for platforms without
// an input-control permission model.
func NewAuthorizer() Authorizer {
	return &OpenAuthorizer{}
}

// Trusted always reports true.
func (a *OpenAuthorizer) Trusted() bool {
	return true
}

// OpenSettings returns ErrNoSettingsSurface; there is nothing to grant.
func (a *OpenAuthorizer) OpenSettings() error {
	return ErrNoSettingsSurface
}
