// Package app wires the listener, input chain, and status surfaces together.
package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/airpad-labs/airpad/internal/hostinput"
)

// RegisterRoutes wires the status API and the trackpad endpoint onto the
// mux. The status routes are what the graphical layer reads; the
// websocket path is fixed by convention with the client.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/api/status", a.handleStatus)
	mux.HandleFunc("/api/permission", a.handlePermission)
	mux.HandleFunc("/api/permission/open", a.handlePermissionOpen)
	mux.Handle("/ws/trackpad", a.listener)
}

// handleHealth answers liveness probes.
func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleStatus returns the current server state snapshot.
func (a *App) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a.state.Snapshot())
}

// handlePermission re-checks the input-control grant on demand. This is
// the refresh path: the grant can change while the server runs.
func (a *App) handlePermission(w http.ResponseWriter, _ *http.Request) {
	granted := a.auth.Trusted()
	a.state.SetInputPermission(granted)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"granted": granted})
}

// handlePermissionOpen opens the OS settings surface for the grant.
func (a *App) handlePermissionOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := a.auth.OpenSettings(); err != nil {
		if errors.Is(err, hostinput.ErrNoSettingsSurface) {
			http.Error(w, err.Error(), http.StatusNotImplemented)
			return
		}
		http.Error(w, "failed to open settings", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
