// Package sample generates synthetic strokes.
package sample

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/verte-zerg/tuircle/internal/model"
)

// Shape selects the outline to trace.
type Shape string

const (
	Circle  Shape = "circle"
	Ellipse Shape = "ellipse"
	Line    Shape = "line"
	Spiral  Shape = "spiral"
	Square  Shape = "square"
)

// Shapes lists the supported shapes.
var Shapes = []Shape{Circle, Ellipse, Line, Spiral, Square}

// ParseShape resolves a shape name.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Shapes {
		if string(s) == name {
			return s, nil
		}
	}
	names := make([]string, len(Shapes))
	for i, s := range Shapes {
		names[i] = string(s)
	}
	return "", fmt.Errorf("unknown shape %q (available: %s)", name, strings.Join(names, ", "))
}

// Options describes a stroke to generate.
type Options struct {
	Shape  Shape
	Points int
	Center model.Point
	Radius float64
	// Noise is the standard deviation of the radial jitter, relative to Radius.
	Noise float64
	// Gap is the fraction of the outline left undrawn at the end (0 closes the stroke).
	Gap float64
}

// Generator produces randomized strokes.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Stroke traces the requested shape from its first to its last point.
func (g *Generator) Stroke(opts Options) []model.Point {
	n := opts.Points
	if n <= 0 {
		return nil
	}
	gap := math.Max(0, math.Min(1, opts.Gap))
	out := make([]model.Point, 0, n)
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1) * (1 - gap)
		}
		p := outline(opts.Shape, t)
		jitter := 1.0
		if opts.Noise > 0 {
			jitter += g.rnd.NormFloat64() * opts.Noise
		}
		out = append(out, opts.Center.Add(p.Scale(opts.Radius*jitter)))
	}
	return out
}

// outline returns the unit-size point of a shape at t in [0,1].
func outline(shape Shape, t float64) model.Point {
	angle := 2 * math.Pi * t
	switch shape {
	case Ellipse:
		return model.Pt(math.Cos(angle), 0.5*math.Sin(angle))
	case Line:
		return model.Pt(2*t-1, 0)
	case Spiral:
		r := 0.3 + 0.7*t
		return model.Pt(r*math.Cos(2*angle), r*math.Sin(2*angle))
	case Square:
		return squarePoint(t)
	default:
		return model.Pt(math.Cos(angle), math.Sin(angle))
	}
}

func squarePoint(t float64) model.Point {
	side := math.Min(t*4, 3.999999)
	f := side - math.Floor(side)
	switch int(side) {
	case 0:
		return model.Pt(-1+2*f, -1)
	case 1:
		return model.Pt(1, -1+2*f)
	case 2:
		return model.Pt(1-2*f, 1)
	default:
		return model.Pt(-1, 1-2*f)
	}
}
