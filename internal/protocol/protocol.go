// Package protocol defines the trackpad wire format and its codec.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind discriminates trackpad event variants. The set is closed; any
// other value on the wire is a decode error.
type Kind string

const (
	// KindMove carries a normalized cursor position.
	KindMove Kind = "move"
	// KindClick requests a click at the host's current cursor location.
	KindClick Kind = "singleClick"
	// KindScroll carries a raw signed scroll delta pair.
	KindScroll Kind = "scroll"
)

// ErrUnknownKind indicates a discriminant outside the closed set.
var ErrUnknownKind = errors.New("unknown event kind")

// ErrMissingPoint indicates a move or scroll envelope without a complete point.
var ErrMissingPoint = errors.New("missing point payload")

// Point is the two-component numeric payload. Its meaning depends on the
// event kind: a normalized position for moves, a delta pair for scrolls,
// and it is ignored for clicks.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Event is one decoded trackpad message.
type Event struct {
	Kind  Kind  `json:"kind"`
	Point Point `json:"point"`
}

// wireEvent mirrors Event with pointer fields so missing members can be
// told apart from zero values.
type wireEvent struct {
	Kind  *Kind      `json:"kind"`
	Point *wirePoint `json:"point"`
}

type wirePoint struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// Decode parses one wire envelope into an Event. Decoding is
// all-or-nothing: on error the returned Event is the zero value and no
// state anywhere has changed.
func Decode(data []byte) (Event, error) {
	var raw wireEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return Event{}, fmt.Errorf("decode envelope: %w", err)
	}
	if raw.Kind == nil {
		return Event{}, fmt.Errorf("decode envelope: %w", ErrUnknownKind)
	}

	switch *raw.Kind {
	case KindMove, KindScroll:
		if raw.Point == nil || raw.Point.X == nil || raw.Point.Y == nil {
			return Event{}, fmt.Errorf("decode %s: %w", *raw.Kind, ErrMissingPoint)
		}
		return Event{Kind: *raw.Kind, Point: Point{X: *raw.Point.X, Y: *raw.Point.Y}}, nil
	case KindClick:
		// Clicks land at the host cursor; the point is optional and
		// decoded only when complete so the event round-trips.
		ev := Event{Kind: KindClick}
		if raw.Point != nil && raw.Point.X != nil && raw.Point.Y != nil {
			ev.Point = Point{X: *raw.Point.X, Y: *raw.Point.Y}
		}
		return ev, nil
	default:
		return Event{}, fmt.Errorf("decode envelope %q: %w", *raw.Kind, ErrUnknownKind)
	}
}

// Encode serializes an Event into its wire envelope. The host never sends
// events; this is the client-side half of the codec and keeps tests honest.
func Encode(ev Event) ([]byte, error) {
	if ev.Kind != KindMove && ev.Kind != KindClick && ev.Kind != KindScroll {
		return nil, fmt.Errorf("encode envelope %q: %w", ev.Kind, ErrUnknownKind)
	}
	return json.Marshal(ev)
}
