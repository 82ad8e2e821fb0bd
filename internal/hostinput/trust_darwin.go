//go:build darwin

// Package hostinput defines host pointer injection and permission interfaces.
package hostinput

/*
#cgo LDFLAGS: -framework ApplicationServices

#include <ApplicationServices/ApplicationServices.h>

static bool processTrusted() {
    return AXIsProcessTrusted();
}
*/
import "C"
import "os/exec"

// accessibilityPane deep-links to the Accessibility privacy settings.
const accessibilityPane = "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"

// AXAuthorizer checks macOS Accessibility trust for the current process.
type AXAuthorizer struct{}

// NewAuthorizer returns the macOS Accessibility authorizer.
func NewAuthorizer() Authorizer {
	return &AXAuthorizer{}
}

// Trusted reports whether the process may synthesize input events.
func (a *AXAuthorizer) Trusted() bool {
	return bool(C.processTrusted())
}

// OpenSettings opens the Accessibility pane of System Settings.
func (a *AXAuthorizer) OpenSettings() error {
	return exec.Command("open", accessibilityPane).Start()
}
