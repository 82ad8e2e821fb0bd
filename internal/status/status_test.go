package status

import "testing"

// TestNew_StartsIdle verifies the initial phase.
func TestNew_StartsIdle(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	if snap.Phase != PhaseIdle || snap.Endpoint != "" || snap.LastEvent != "" {
		t.Fatalf("unexpected initial snapshot: %+v", snap)
	}
}

// TestSetConnected verifies the connected phase carries the endpoint.
func TestSetConnected(t *testing.T) {
	s := New()
	s.SetConnected("192.0.2.7:52110")
	snap := s.Snapshot()
	if snap.Phase != PhaseConnected || snap.Endpoint != "192.0.2.7:52110" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

// TestSetListening_ClearsEndpoint verifies listening drops the old peer endpoint.
func TestSetListening_ClearsEndpoint(t *testing.T) {
	s := New()
	s.SetConnected("192.0.2.7:52110")
	s.SetListening()
	snap := s.Snapshot()
	if snap.Phase != PhaseListening || snap.Endpoint != "" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

// TestSetIdle_ClearsLastEvent verifies stop resets the message summary.
func TestSetIdle_ClearsLastEvent(t *testing.T) {
	s := New()
	s.SetConnected("peer")
	s.SetLastEvent("move -> (10, 20)")
	s.SetIdle()
	snap := s.Snapshot()
	if snap.Phase != PhaseIdle || snap.LastEvent != "" || snap.Endpoint != "" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

// TestSetError verifies a startup failure surfaces its reason.
func TestSetError(t *testing.T) {
	s := New()
	s.SetError("address in use")
	snap := s.Snapshot()
	if snap.Phase != PhaseError || snap.LastEvent != "address in use" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

// TestSetInputPermission verifies permission tracking.
func TestSetInputPermission(t *testing.T) {
	s := New()
	s.SetInputPermission(true)
	if !s.Snapshot().InputPermission {
		t.Fatalf("expected permission granted")
	}
	s.SetInputPermission(false)
	if s.Snapshot().InputPermission {
		t.Fatalf("expected permission revoked")
	}
}

// TestSnapshot_IsCopy verifies later writes do not mutate earlier snapshots.
func TestSnapshot_IsCopy(t *testing.T) {
	s := New()
	s.SetLastEvent("first")
	snap := s.Snapshot()
	s.SetLastEvent("second")
	if snap.LastEvent != "first" {
		t.Fatalf("snapshot mutated: %+v", snap)
	}
}
