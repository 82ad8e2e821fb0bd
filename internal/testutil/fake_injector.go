package testutil

import (
	"sync"

	"github.com/airpad-labs/airpad/internal/hostinput"
)

// Call records a single injected action.
type Call struct {
	Name string
	X    int
	Y    int
}

// FakeInjector implements hostinput.Injector and records calls for tests.
// It is safe for use from a session goroutine while a test observes it.
type FakeInjector struct {
	mu    sync.Mutex
	calls []Call

	// CursorX/CursorY are returned by CursorPos. Set them before the
	// fake is shared across goroutines.
	CursorX int
	CursorY int

	// Err, when set, is returned by every injection method.
	Err error
}

// Ensure FakeInjector implements the interface.
var _ hostinput.Injector = (*FakeInjector)(nil)

// Calls returns a copy of the recorded actions.
func (f *FakeInjector) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Reset clears the recorded actions.
func (f *FakeInjector) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// SetErr changes the error returned by injection methods.
func (f *FakeInjector) SetErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Err = err
}

// record appends a call; the caller holds f.mu.
func (f *FakeInjector) record(c Call) error {
	if f.Err != nil {
		return f.Err
	}
	f.calls = append(f.calls, c)
	return nil
}

// MoveAbs records an absolute move.
func (f *FakeInjector) MoveAbs(x, y int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record(Call{Name: "MoveAbs", X: x, Y: y})
}

// LeftDown records a left mouse down at the configured cursor location.
func (f *FakeInjector) LeftDown() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record(Call{Name: "LeftDown", X: f.CursorX, Y: f.CursorY})
}

// LeftUp records a left mouse up at the configured cursor location.
func (f *FakeInjector) LeftUp() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record(Call{Name: "LeftUp", X: f.CursorX, Y: f.CursorY})
}

// Scroll records a wheel action.
func (f *FakeInjector) Scroll(dx, dy int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record(Call{Name: "Scroll", X: dx, Y: dy})
}

// CursorPos returns the configured cursor location.
func (f *FakeInjector) CursorPos() (int, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CursorX, f.CursorY, nil
}
