// Package server accepts trackpad peers and runs their receive loops.
package server

import (
	"fmt"
	"log"
	"sync"

	"github.com/airpad-labs/airpad/internal/protocol"
	"github.com/airpad-labs/airpad/internal/status"
	"github.com/gorilla/websocket"
)

// EventSink consumes decoded trackpad events.
type EventSink interface {
	Handle(ev protocol.Event)
}

// SessionState tracks a session through its lifecycle. Failed and
// Cancelled are terminal; there is no way back to Connecting from Ready.
type SessionState int

const (
	// StateConnecting is the initial state before the receive loop starts.
	StateConnecting SessionState = iota
	// StateReady means the receive loop is running.
	StateReady
	// StateFailed means the transport errored or the peer went away.
	StateFailed
	// StateCancelled means the session was preempted or stopped.
	StateCancelled
)

// String returns the state name for logs.
func (s SessionState) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session owns exactly one peer connection. It is receive-only: it never
// initiates outbound data. The Listener, not the Session, decides when a
// session must die.
type Session struct {
	mu       sync.Mutex
	conn     *websocket.Conn
	endpoint string
	state    SessionState
	sink     EventSink
	status   *status.State
}

// newSession wraps an accepted connection. The caller starts the receive
// loop with run.
func newSession(conn *websocket.Conn, sink EventSink, st *status.State) *Session {
	return &Session{
		conn:     conn,
		endpoint: conn.RemoteAddr().String(),
		state:    StateConnecting,
		sink:     sink,
		status:   st,
	}
}

// Endpoint returns the peer address, for display only.
func (s *Session) Endpoint() string {
	return s.endpoint
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// run drives the receive loop until a terminal state. One receive is in
// flight at a time; each completed message immediately re-arms the next.
// Every status write is made under the session mutex so a completion
// arriving after cancellation can never touch shared state.
func (s *Session) run() {
	if !s.ready() {
		// Preempted before the loop started.
		return
	}
	log.Printf("peer connected: %s", s.endpoint)

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if s.fail(err) {
				log.Printf("peer lost: %s: %v", s.endpoint, err)
			}
			return
		}
		if s.State() != StateReady {
			return
		}
		ev, err := protocol.Decode(data)
		if err != nil {
			// Malformed messages never terminate the session.
			if !s.noteDecodeError(err) {
				return
			}
			continue
		}
		s.sink.Handle(ev)
	}
}

// ready moves Connecting to Ready and publishes the connected status.
// The status write happens while s.mu is held: cancel takes the same
// mutex, so a preempting listener cannot interleave between the Ready
// transition and the write, and a session cancelled first never writes
// at all. Returns false when the session was cancelled before the loop
// could start.
func (s *Session) ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateConnecting {
		return false
	}
	s.state = StateReady
	s.status.SetConnected(s.endpoint)
	return true
}

// fail marks the session Failed, releases the connection, and records
// the close reason. Returns false when the session is already terminal;
// a read completing after cancellation belongs to a dead session and
// must not touch shared state.
func (s *Session) fail(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFailed || s.state == StateCancelled {
		return false
	}
	s.state = StateFailed
	_ = s.conn.Close()
	s.status.SetLastEvent(fmt.Sprintf("connection closed: %v", err))
	return true
}

// noteDecodeError records a malformed message on status. Returns false
// when the session is no longer ready and must stop writing.
func (s *Session) noteDecodeError(err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReady {
		return false
	}
	s.status.SetLastEvent(fmt.Sprintf("decode error: %v", err))
	return true
}

// cancel force-terminates the session. Closing the connection errors any
// in-flight read; its completion is ignored because the state is already
// terminal. Idempotent.
func (s *Session) cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateFailed || s.state == StateCancelled {
		return
	}
	s.state = StateCancelled
	_ = s.conn.Close()
}
