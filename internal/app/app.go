// Package app wires the listener, input chain, and status surfaces together.
package app

import (
	"errors"
	"log"
	"sync"

	"github.com/airpad-labs/airpad/internal/config"
	"github.com/airpad-labs/airpad/internal/control"
	"github.com/airpad-labs/airpad/internal/discovery"
	"github.com/airpad-labs/airpad/internal/display"
	"github.com/airpad-labs/airpad/internal/hostinput"
	"github.com/airpad-labs/airpad/internal/server"
	"github.com/airpad-labs/airpad/internal/status"
)

// App coordinates the trackpad listener, the event handler chain, and the
// service advertisement.
type App struct {
	mu         sync.Mutex
	cfg        config.Config
	state      *status.State
	auth       hostinput.Authorizer
	listener   *server.Listener
	advertiser *discovery.Advertiser
}

// New creates an application with its dependencies wired.
func New(cfg config.Config, injector hostinput.Injector, auth hostinput.Authorizer, bounds display.Provider) (*App, error) {
	if injector == nil {
		return nil, errors.New("injector is required")
	}
	if auth == nil {
		return nil, errors.New("authorizer is required")
	}
	if bounds == nil {
		return nil, errors.New("display provider is required")
	}

	state := status.New()
	handler := control.NewHandler(bounds, injector, auth, state)

	return &App{
		cfg:      cfg,
		state:    state,
		auth:     auth,
		listener: server.NewListener(handler, state),
	}, nil
}

// Start records the initial permission state, registers the service
// advertisement, and marks the server as listening. A failed registration
// is surfaced via status and does not prevent direct connections.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.SetInputPermission(a.auth.Trusted())

	if a.cfg.MDNSEnabled {
		port, err := a.cfg.Port()
		if err != nil {
			a.state.SetError(err.Error())
			return err
		}
		adv, err := discovery.Register(a.cfg.InstanceName, port)
		if err != nil {
			log.Printf("service advertisement: %v", err)
			a.state.SetLastEvent("service advertisement unavailable")
		} else {
			a.advertiser = adv
		}
	}

	a.state.SetListening()
	return nil
}

// Stop terminates the live session, withdraws the advertisement, and
// resets status to idle.
func (a *App) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.listener.Stop()
	if a.advertiser != nil {
		a.advertiser.Shutdown()
		a.advertiser = nil
	}
	a.state.SetIdle()
	return nil
}

// State exposes the observable server state.
func (a *App) State() *status.State {
	return a.state
}

// Listener exposes the trackpad websocket handler.
func (a *App) Listener() *server.Listener {
	return a.listener
}
