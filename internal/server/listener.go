// Package server accepts trackpad peers and runs their receive loops.
package server

import (
	"net/http"
	"sync"

	"github.com/airpad-labs/airpad/internal/status"
	"github.com/gorilla/websocket"
)

// Listener upgrades inbound trackpad connections and enforces the
// single-active-peer policy: a new peer always preempts the old one.
type Listener struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	sink     EventSink
	status   *status.State
	live     *Session
}

// NewListener creates a listener feeding decoded events into sink.
func NewListener(sink EventSink, st *status.State) *Listener {
	return &Listener{
		sink:   sink,
		status: st,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP accepts one peer connection and blocks on its receive loop.
func (l *Listener) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := l.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	sess := newSession(conn, l.sink, l.status)
	l.accept(sess)
	defer l.cleanup(sess)
	sess.run()
}

// accept installs a session as the live one, force-cancelling any
// predecessor first. Last writer wins; in-flight messages on the old
// session are abandoned, not drained.
func (l *Listener) accept(s *Session) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.live != nil {
		l.live.cancel()
	}
	l.live = s
}

// cleanup releases the live slot when the session that owns it ends. A
// preempted session finds the slot already taken and leaves it alone.
func (l *Listener) cleanup(s *Session) {
	s.cancel()
	l.mu.Lock()
	if l.live == s {
		l.live = nil
		l.status.SetListening()
	}
	l.mu.Unlock()
}

// Stop terminates the live session, if any.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.live != nil {
		l.live.cancel()
		l.live = nil
	}
}

// liveSession returns the current live session, for observation.
func (l *Listener) liveSession() *Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.live
}
