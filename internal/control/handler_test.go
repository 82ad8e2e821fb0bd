package control

import (
	"errors"
	"strings"
	"testing"

	"github.com/airpad-labs/airpad/internal/display"
	"github.com/airpad-labs/airpad/internal/protocol"
	"github.com/airpad-labs/airpad/internal/status"
	"github.com/airpad-labs/airpad/internal/testutil"
)

// fixedBounds returns a provider for a static display.
func fixedBounds(b display.Bounds) display.Provider {
	return func() (display.Bounds, error) { return b, nil }
}

// TestHandle_MoveEndToEnd verifies a centered move on a 1000x800 display
// injects at (500,400).
func TestHandle_MoveEndToEnd(t *testing.T) {
	inj := &testutil.FakeInjector{}
	st := status.New()
	h := NewHandler(fixedBounds(display.Bounds{W: 1000, H: 800}), inj, &testutil.FakeAuthorizer{Granted: true}, st)

	h.Handle(protocol.Event{Kind: protocol.KindMove, Point: protocol.Point{X: 0.5, Y: 0.5}})

	calls := inj.Calls()
	if len(calls) != 1 || calls[0].Name != "MoveAbs" {
		t.Fatalf("expected one MoveAbs, got %#v", calls)
	}
	if calls[0].X != 500 || calls[0].Y != 400 {
		t.Fatalf("expected (500,400), got (%d,%d)", calls[0].X, calls[0].Y)
	}
}

// TestHandle_ClickIgnoresPoint verifies clicks land at the current cursor
// location regardless of the transmitted point.
func TestHandle_ClickIgnoresPoint(t *testing.T) {
	inj := &testutil.FakeInjector{CursorX: 123, CursorY: 456}
	st := status.New()
	h := NewHandler(fixedBounds(display.Bounds{W: 1000, H: 800}), inj, &testutil.FakeAuthorizer{Granted: true}, st)

	for _, p := range []protocol.Point{{}, {X: 0.9, Y: 0.1}, {X: -5, Y: 40}} {
		inj.Reset()
		h.Handle(protocol.Event{Kind: protocol.KindClick, Point: p})
		calls := inj.Calls()
		if len(calls) != 2 || calls[0].Name != "LeftDown" || calls[1].Name != "LeftUp" {
			t.Fatalf("point %+v: expected LeftDown then LeftUp, got %#v", p, calls)
		}
		for _, c := range calls {
			if c.X != 123 || c.Y != 456 {
				t.Fatalf("point %+v: expected click at (123,456), got (%d,%d)", p, c.X, c.Y)
			}
		}
	}
}

// TestHandle_ScrollPassthrough verifies the (3,-7) scenario reaches the
// injector as a single two-axis wheel action with no move or click.
func TestHandle_ScrollPassthrough(t *testing.T) {
	inj := &testutil.FakeInjector{}
	st := status.New()
	h := NewHandler(fixedBounds(display.Bounds{W: 1000, H: 800}), inj, &testutil.FakeAuthorizer{Granted: true}, st)

	h.Handle(protocol.Event{Kind: protocol.KindScroll, Point: protocol.Point{X: 3, Y: -7}})

	calls := inj.Calls()
	if len(calls) != 1 || calls[0].Name != "Scroll" {
		t.Fatalf("expected one Scroll, got %#v", calls)
	}
	if calls[0].X != 3 || calls[0].Y != -7 {
		t.Fatalf("expected (3,-7), got (%d,%d)", calls[0].X, calls[0].Y)
	}
}

// TestHandle_PermissionGate verifies no injection happens without the
// grant, and that a fresh grant lets the same event inject exactly once.
func TestHandle_PermissionGate(t *testing.T) {
	inj := &testutil.FakeInjector{}
	auth := &testutil.FakeAuthorizer{Granted: false}
	st := status.New()
	h := NewHandler(fixedBounds(display.Bounds{W: 1000, H: 800}), inj, auth, st)
	ev := protocol.Event{Kind: protocol.KindMove, Point: protocol.Point{X: 0.5, Y: 0.5}}

	h.Handle(ev)
	if calls := inj.Calls(); len(calls) != 0 {
		t.Fatalf("expected no injection without permission, got %#v", calls)
	}
	snap := st.Snapshot()
	if snap.InputPermission || !strings.Contains(snap.LastEvent, "permission") {
		t.Fatalf("expected permission-absent status, got %+v", snap)
	}

	auth.Granted = true
	h.Handle(ev)
	if calls := inj.Calls(); len(calls) != 1 {
		t.Fatalf("expected exactly one injection after grant, got %#v", calls)
	}
	if !st.Snapshot().InputPermission {
		t.Fatalf("expected permission reflected in status")
	}
	if auth.TrustedCount != 2 {
		t.Fatalf("expected permission re-read per event, got %d checks", auth.TrustedCount)
	}
}

// TestHandle_DisplayErrorDropsEvent verifies a failed geometry query drops
// the move without injecting.
func TestHandle_DisplayErrorDropsEvent(t *testing.T) {
	inj := &testutil.FakeInjector{}
	st := status.New()
	failing := func() (display.Bounds, error) { return display.Bounds{}, errors.New("no displays") }
	h := NewHandler(failing, inj, &testutil.FakeAuthorizer{Granted: true}, st)

	h.Handle(protocol.Event{Kind: protocol.KindMove, Point: protocol.Point{X: 0.5, Y: 0.5}})

	if calls := inj.Calls(); len(calls) != 0 {
		t.Fatalf("expected no injection, got %#v", calls)
	}
	if !strings.Contains(st.Snapshot().LastEvent, "display unavailable") {
		t.Fatalf("expected display error in status, got %+v", st.Snapshot())
	}
}

// TestHandle_InjectionErrorRecovered verifies an injection failure is
// reported and the next event still injects.
func TestHandle_InjectionErrorRecovered(t *testing.T) {
	inj := &testutil.FakeInjector{Err: errors.New("rejected")}
	st := status.New()
	h := NewHandler(fixedBounds(display.Bounds{W: 1000, H: 800}), inj, &testutil.FakeAuthorizer{Granted: true}, st)
	ev := protocol.Event{Kind: protocol.KindMove, Point: protocol.Point{X: 0.5, Y: 0.5}}

	h.Handle(ev)
	if !strings.Contains(st.Snapshot().LastEvent, "injection failed") {
		t.Fatalf("expected injection failure in status, got %+v", st.Snapshot())
	}

	inj.SetErr(nil)
	h.Handle(ev)
	calls := inj.Calls()
	if len(calls) != 1 || calls[0].Name != "MoveAbs" {
		t.Fatalf("expected recovery on next event, got %#v", calls)
	}
}

// TestHandle_FreshBoundsPerMove verifies display bounds are re-queried on
// every move translation.
func TestHandle_FreshBoundsPerMove(t *testing.T) {
	inj := &testutil.FakeInjector{}
	st := status.New()
	queries := 0
	counting := func() (display.Bounds, error) {
		queries++
		return display.Bounds{W: 1000, H: 800}, nil
	}
	h := NewHandler(counting, inj, &testutil.FakeAuthorizer{Granted: true}, st)
	ev := protocol.Event{Kind: protocol.KindMove, Point: protocol.Point{X: 0.5, Y: 0.5}}

	h.Handle(ev)
	h.Handle(ev)
	if queries != 2 {
		t.Fatalf("expected 2 bounds queries, got %d", queries)
	}
}
