// Package engine sequences stroke capture, scoring and session stats.
package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/tuircle/internal/capture"
	"github.com/verte-zerg/tuircle/internal/model"
	"github.com/verte-zerg/tuircle/internal/scorer"
)

// State is the interaction state of the drawing surface.
type State int

const (
	Idle State = iota
	Drawing
	Evaluated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Evaluated:
		return "evaluated"
	default:
		return "unknown"
	}
}

// Frame is a read-only copy of everything a renderer needs.
type Frame struct {
	State    State
	Points   []model.Point
	ShowGrid bool
	Result   *model.Result
	Stats    model.SessionStats
}

// Renderer paints frames. It must not hold on to mutable engine state.
type Renderer interface {
	Render(Frame)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Frame)

// Render implements Renderer.
func (f RendererFunc) Render(fr Frame) { f(fr) }

// SharePayload is what the share collaborator needs about the latest attempt.
type SharePayload struct {
	Score    int
	Attempts int
	Link     string
}

// DefaultShareLink is used when no link is configured.
const DefaultShareLink = "https://your-game-site.com"

// Option configures a Machine.
type Option func(*Machine)

// WithRenderer sets the renderer notified after every state change.
func WithRenderer(r Renderer) Option {
	return func(m *Machine) { m.renderer = r }
}

// WithLogger sets the logger used for evaluation records.
func WithLogger(l *zap.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.log = l
		}
	}
}

// WithStats hands an explicitly owned stats value to the machine.
func WithStats(s *model.SessionStats) Option {
	return func(m *Machine) {
		if s != nil {
			m.stats = s
		}
	}
}

// WithGrid sets the initial grid visibility.
func WithGrid(show bool) Option {
	return func(m *Machine) { m.showGrid = show }
}

// WithShareLink sets the destination link exposed by Share.
func WithShareLink(link string) Option {
	return func(m *Machine) {
		if link != "" {
			m.shareLink = link
		}
	}
}

// Machine is the interaction controller. It is not safe for concurrent use;
// callers feed it from a single event loop.
type Machine struct {
	state     State
	capture   capture.Capture
	result    *model.Result
	stats     *model.SessionStats
	showGrid  bool
	shareLink string

	dirty    bool
	renderer Renderer
	log      *zap.Logger
}

// New returns a Machine in the Idle state.
func New(opts ...Option) *Machine {
	m := &Machine{
		stats:     &model.SessionStats{},
		showGrid:  true,
		shareLink: DefaultShareLink,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(zap.String("session", uuid.NewString()))
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Stats returns a copy of the session stats.
func (m *Machine) Stats() model.SessionStats {
	return m.stats.Clone()
}

// Result returns the current evaluation, if any.
func (m *Machine) Result() (model.Result, bool) {
	if m.result == nil {
		return model.Result{}, false
	}
	return *m.result, true
}

// Frame returns a snapshot of the current state.
func (m *Machine) Frame() Frame {
	f := Frame{
		State:    m.state,
		Points:   m.capture.Points(),
		ShowGrid: m.showGrid,
		Stats:    m.stats.Clone(),
	}
	if m.result != nil {
		r := *m.result
		f.Result = &r
	}
	return f
}

// Start begins a stroke at p. Ignored unless Idle.
func (m *Machine) Start(p model.Point) {
	m.start(capture.Primary, p)
	m.flush()
}

// Append adds p to the live stroke. Ignored unless Drawing.
func (m *Machine) Append(p model.Point) {
	m.append(capture.Primary, p)
	m.flush()
}

// End freezes the live stroke and evaluates it. Ignored unless Drawing.
func (m *Machine) End() {
	m.end(capture.AnyContact)
	m.flush()
}

// Clear discards the stroke and result and returns to Idle. Stats are kept.
func (m *Machine) Clear() {
	m.capture.Reset()
	m.result = nil
	m.state = Idle
	m.dirty = true
	m.flush()
}

// ToggleGrid flips grid visibility.
func (m *Machine) ToggleGrid() {
	m.showGrid = !m.showGrid
	m.dirty = true
	m.flush()
}

// Share returns the payload for the latest evaluation.
func (m *Machine) Share() (SharePayload, bool) {
	if m.result == nil {
		return SharePayload{}, false
	}
	return SharePayload{
		Score:    m.result.Score,
		Attempts: m.stats.Attempts,
		Link:     m.shareLink,
	}, true
}

func (m *Machine) start(contact capture.Contact, p model.Point) {
	if m.state != Idle {
		return
	}
	if !m.capture.Begin(contact, p) {
		return
	}
	m.state = Drawing
	m.dirty = true
}

func (m *Machine) append(contact capture.Contact, p model.Point) {
	if m.state != Drawing {
		return
	}
	if m.capture.Add(contact, p) {
		m.dirty = true
	}
}

func (m *Machine) end(contact capture.Contact) {
	if m.state != Drawing {
		return
	}
	points, ok := m.capture.Freeze(contact)
	if !ok {
		return
	}
	result := scorer.Evaluate(points)
	m.result = &result
	m.stats.Record(result)
	m.state = Evaluated
	m.dirty = true
	m.log.Debug("stroke evaluated",
		zap.Int("points", len(points)),
		zap.Int("score", result.Score),
		zap.String("tier", string(result.Tier)),
		zap.Bool("closed", result.Closed),
		zap.Int("attempts", m.stats.Attempts),
		zap.Int("best", m.stats.BestScore),
	)
}

func (m *Machine) flush() {
	if !m.dirty {
		return
	}
	m.dirty = false
	if m.renderer != nil {
		m.renderer.Render(m.Frame())
	}
}
