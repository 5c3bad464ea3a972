package engine

import (
	"github.com/verte-zerg/tuircle/internal/capture"
	"github.com/verte-zerg/tuircle/internal/model"
)

// EventKind is the kind of a device event.
type EventKind int

const (
	// PointerDown presses a contact on the surface.
	PointerDown EventKind = iota
	// PointerMove reports a new position for a pressed contact.
	PointerMove
	// PointerUp releases a contact.
	PointerUp
	// PointerCancel means the surface lost the pointer (focus loss, leave).
	PointerCancel
)

// Event is a raw pointer or touch sample.
type Event struct {
	Kind    EventKind
	Contact capture.Contact
	Pos     model.Point
	// HasPos is false when the device sent no usable position.
	HasPos bool
}

// Handle feeds a device event through the state machine and reports whether
// it changed anything. Out-of-order events are dropped silently.
func (m *Machine) Handle(ev Event) bool {
	switch ev.Kind {
	case PointerDown:
		if !ev.HasPos {
			return false
		}
		m.start(ev.Contact, ev.Pos)
	case PointerMove:
		if !ev.HasPos {
			return false
		}
		m.append(ev.Contact, ev.Pos)
	case PointerUp:
		m.end(ev.Contact)
	case PointerCancel:
		m.end(capture.AnyContact)
	default:
		return false
	}
	changed := m.dirty
	m.flush()
	return changed
}
