// Package status holds the observable server state read by the display layer.
package status

import "sync"

// PhaseIdle means the server is stopped and accepting nothing.
const PhaseIdle = "idle"

// PhaseListening means the server is accepting a peer connection.
const PhaseListening = "listening"

// PhaseConnected means a peer session is live.
const PhaseConnected = "connected"

// PhaseError means the server could not be started.
const PhaseError = "error"

// Snapshot is a read-only view of the current server state. No cross-field
// consistency is guaranteed beyond a single snapshot.
type Snapshot struct {
	Phase           string `json:"phase"`
	Endpoint        string `json:"endpoint,omitempty"`
	LastEvent       string `json:"lastEvent,omitempty"`
	InputPermission bool   `json:"inputPermission"`
}

// State is the process-wide server state. It is written by the serving
// flow and read by the HTTP status layer.
type State struct {
	mu              sync.RWMutex
	phase           string
	endpoint        string
	lastEvent       string
	inputPermission bool
}

// New returns an idle state.
func New() *State {
	return &State{phase: PhaseIdle}
}

// SetIdle resets the state to idle and clears the last event summary.
func (s *State) SetIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseIdle
	s.endpoint = ""
	s.lastEvent = ""
}

// SetListening marks the server as waiting for a peer.
func (s *State) SetListening() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseListening
	s.endpoint = ""
}

// SetConnected marks a live peer session with its endpoint.
func (s *State) SetConnected(endpoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseConnected
	s.endpoint = endpoint
}

// SetError marks a startup failure with its reason.
func (s *State) SetError(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseError
	s.lastEvent = reason
}

// SetLastEvent records the outcome of the most recent message.
func (s *State) SetLastEvent(summary string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastEvent = summary
}

// SetInputPermission records the most recent permission check result.
func (s *State) SetInputPermission(granted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputPermission = granted
}

// Phase returns the current phase.
func (s *State) Phase() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// LastEvent returns the most recent message summary.
func (s *State) LastEvent() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastEvent
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Phase:           s.phase,
		Endpoint:        s.endpoint,
		LastEvent:       s.lastEvent,
		InputPermission: s.inputPermission,
	}
}
