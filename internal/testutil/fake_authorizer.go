package testutil

import "github.com/airpad-labs/airpad/internal/hostinput"

// FakeAuthorizer implements hostinput.Authorizer with a settable grant.
type FakeAuthorizer struct {
	Granted      bool
	OpenErr      error
	OpenedCount  int
	TrustedCount int
}

// Ensure FakeAuthorizer implements the interface.
var _ hostinput.Authorizer = (*FakeAuthorizer)(nil)

// Trusted reports the configured grant and counts the re-check.
func (f *FakeAuthorizer) Trusted() bool {
	f.TrustedCount++
	return f.Granted
}

// OpenSettings counts the call and returns the configured error.
func (f *FakeAuthorizer) OpenSettings() error {
	f.OpenedCount++
	return f.OpenErr
}
