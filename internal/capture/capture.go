// Package capture turns pointer samples into a single ordered stroke.
package capture

import "github.com/verte-zerg/tuircle/internal/model"

// Contact identifies one pointer (a mouse button or a touch).
type Contact int

const (
	// AnyContact matches whichever contact currently owns the stroke.
	// Terminals often report releases without saying which button went up.
	AnyContact Contact = -1
	// Primary is the contact used when the caller does not track contacts.
	Primary Contact = 0
)

// Capture owns at most one stroke. The first contact that begins a stroke
// keeps it until Reset; samples from any other contact are dropped.
type Capture struct {
	points  []model.Point
	contact Contact
	live    bool
	frozen  bool
}

// Begin starts a new stroke at p. It fails while a stroke is live or frozen.
func (c *Capture) Begin(contact Contact, p model.Point) bool {
	if c.live || c.frozen || contact == AnyContact {
		return false
	}
	c.points = []model.Point{p}
	c.contact = contact
	c.live = true
	return true
}

// Add appends p to the live stroke of the owning contact.
func (c *Capture) Add(contact Contact, p model.Point) bool {
	if !c.owns(contact) {
		return false
	}
	c.points = append(c.points, p)
	return true
}

// Freeze ends the live stroke and returns a copy of its points.
func (c *Capture) Freeze(contact Contact) ([]model.Point, bool) {
	if !c.owns(contact) {
		return nil, false
	}
	c.live = false
	c.frozen = true
	return c.Points(), true
}

// Reset discards the live or frozen stroke.
func (c *Capture) Reset() {
	c.points = nil
	c.contact = Primary
	c.live = false
	c.frozen = false
}

// Points returns a copy of the current stroke.
func (c *Capture) Points() []model.Point {
	out := make([]model.Point, len(c.points))
	copy(out, c.points)
	return out
}

// Len reports the number of points in the current stroke.
func (c *Capture) Len() int {
	return len(c.points)
}

// Live reports whether a stroke is accepting points.
func (c *Capture) Live() bool {
	return c.live
}

// Frozen reports whether the stroke was ended and is now immutable.
func (c *Capture) Frozen() bool {
	return c.frozen
}

func (c *Capture) owns(contact Contact) bool {
	if !c.live {
		return false
	}
	return contact == AnyContact || contact == c.contact
}
