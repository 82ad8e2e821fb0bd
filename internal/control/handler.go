// Package control translates trackpad events into host input actions.
package control

import (
	"fmt"
	"log"

	"github.com/airpad-labs/airpad/internal/display"
	"github.com/airpad-labs/airpad/internal/hostinput"
	"github.com/airpad-labs/airpad/internal/protocol"
	"github.com/airpad-labs/airpad/internal/status"
)

// Handler routes decoded trackpad events through the translator to the
// host input layer. Every outcome, success or failure, is recorded on the
// status state; nothing here terminates the session that feeds it.
type Handler struct {
	bounds   display.Provider
	injector hostinput.Injector
	auth     hostinput.Authorizer
	state    *status.State
}

// NewHandler wires the translator/injector chain.
func NewHandler(bounds display.Provider, injector hostinput.Injector, auth hostinput.Authorizer, state *status.State) *Handler {
	return &Handler{
		bounds:   bounds,
		injector: injector,
		auth:     auth,
		state:    state,
	}
}

// Handle applies one decoded event. The permission flag is re-read on
// every call; a grant revoked between messages takes effect immediately.
func (h *Handler) Handle(ev protocol.Event) {
	granted := h.auth.Trusted()
	h.state.SetInputPermission(granted)
	if !granted {
		h.state.SetLastEvent("input permission not granted; event discarded")
		return
	}

	switch ev.Kind {
	case protocol.KindMove:
		h.handleMove(ev.Point)
	case protocol.KindClick:
		h.handleClick()
	case protocol.KindScroll:
		h.handleScroll(ev.Point)
	}
}

// handleMove translates a normalized position against fresh display
// bounds and issues one absolute move.
func (h *Handler) handleMove(p protocol.Point) {
	b, err := h.bounds()
	if err != nil {
		log.Printf("display query: %v", err)
		h.state.SetLastEvent(fmt.Sprintf("display unavailable: %v", err))
		return
	}
	x, y := NormToScreen(p.X, p.Y, b)
	if err := h.injector.MoveAbs(x, y); err != nil {
		log.Printf("move injection: %v", err)
		h.state.SetLastEvent(fmt.Sprintf("move injection failed: %v", err))
		return
	}
	h.state.SetLastEvent(fmt.Sprintf("move -> (%d, %d)", x, y))
}

// handleClick presses and releases at the cursor's current location.
// The transmitted point is ignored; the handheld predicts the cursor
// position client-side and the hardware cursor is authoritative.
func (h *Handler) handleClick() {
	x, y, err := h.injector.CursorPos()
	if err != nil {
		log.Printf("cursor query: %v", err)
		h.state.SetLastEvent(fmt.Sprintf("click failed: %v", err))
		return
	}
	if err := h.injector.LeftDown(); err != nil {
		log.Printf("click injection: %v", err)
		h.state.SetLastEvent(fmt.Sprintf("click injection failed: %v", err))
		return
	}
	if err := h.injector.LeftUp(); err != nil {
		log.Printf("click injection: %v", err)
		h.state.SetLastEvent(fmt.Sprintf("click injection failed: %v", err))
		return
	}
	h.state.SetLastEvent(fmt.Sprintf("click at (%d, %d)", x, y))
}

// handleScroll forwards the truncated delta pair as one wheel action.
func (h *Handler) handleScroll(p protocol.Point) {
	dx, dy := ScrollDelta(p.X, p.Y)
	if err := h.injector.Scroll(dx, dy); err != nil {
		log.Printf("scroll injection: %v", err)
		h.state.SetLastEvent(fmt.Sprintf("scroll injection failed: %v", err))
		return
	}
	h.state.SetLastEvent(fmt.Sprintf("scroll (%d, %d)", dx, dy))
}
