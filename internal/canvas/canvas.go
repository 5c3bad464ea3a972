// Package canvas draws strokes on a grid of braille cells.
//
// Every terminal cell holds 2x4 dots. Dots are roughly square on common
// terminal fonts, so a dot is the logical unit of the drawing surface.
package canvas

import (
	"math"
	"strings"

	"github.com/verte-zerg/tuircle/internal/model"
)

const (
	// DotsPerCellX is the number of dot columns in one cell.
	DotsPerCellX = 2
	// DotsPerCellY is the number of dot rows in one cell.
	DotsPerCellY = 4
)

// Canvas is a stack of dot layers. Higher layers win when a cell is shared.
type Canvas struct {
	width  int
	height int
	layers []dots
}

// New returns a canvas of width x height cells with the given layer count.
func New(width, height, layers int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if layers < 1 {
		layers = 1
	}
	c := &Canvas{width: width, height: height, layers: make([]dots, layers)}
	for i := range c.layers {
		c.layers[i] = newDots(width, height)
	}
	return c
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// DotSize returns the canvas size in dots.
func (c *Canvas) DotSize() (width, height int) {
	return c.width * DotsPerCellX, c.height * DotsPerCellY
}

// Set turns on the dot at (x, y). Out-of-range dots are ignored.
func (c *Canvas) Set(layer, x, y int) {
	if layer < 0 || layer >= len(c.layers) {
		return
	}
	c.layers[layer].set(x, y)
}

// Line draws a straight line of dots.
func (c *Canvas) Line(layer, x0, y0, x1, y1 int) {
	drawLine(x0, y0, x1, y1, func(x, y int) {
		c.Set(layer, x, y)
	})
}

// Polyline draws the stroke through points given in dot coordinates.
// Non-finite points are skipped and segments are clipped to the canvas.
func (c *Canvas) Polyline(layer int, points []model.Point) {
	w, h := c.DotSize()
	var prev model.Point
	started := false
	for _, p := range points {
		if !finite(p) {
			continue
		}
		if !started {
			prev, started = p, true
			if a, _, ok := clipSegment(p, p, float64(w), float64(h)); ok {
				c.Set(layer, int(math.Floor(a.X)), int(math.Floor(a.Y)))
			}
			continue
		}
		a, b, ok := clipSegment(prev, p, float64(w), float64(h))
		prev = p
		if !ok {
			continue
		}
		c.Line(layer, int(math.Floor(a.X)), int(math.Floor(a.Y)), int(math.Floor(b.X)), int(math.Floor(b.Y)))
	}
}

// Grid draws dotted guide lines every spacing dots.
func (c *Canvas) Grid(layer, spacing int) {
	if spacing <= 0 {
		return
	}
	w, h := c.DotSize()
	for x := 0; x < w; x += spacing {
		for y := 0; y < h; y += 2 {
			c.Set(layer, x, y)
		}
	}
	for y := 0; y < h; y += spacing {
		for x := 0; x < w; x += 2 {
			c.Set(layer, x, y)
		}
	}
}

// Cell returns the braille rune of a cell and the highest layer that has
// dots in it, or -1 for an empty cell.
func (c *Canvas) Cell(x, y int) (rune, int) {
	var mask uint8
	top := -1
	for i, layer := range c.layers {
		if bits := layer.mask(x, y); bits != 0 {
			mask |= bits
			top = i
		}
	}
	return brailleRune(mask), top
}

// Rows renders every row. style is applied to runs of cells sharing the same
// top layer and may be nil.
func (c *Canvas) Rows(style func(layer int, s string) string) []string {
	rows := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		rows[y] = c.Span(y, 0, c.width, style)
	}
	return rows
}

// Span renders cells [x0, x1) of row y.
func (c *Canvas) Span(y, x0, x1 int, style func(layer int, s string) string) string {
	if x0 < 0 {
		x0 = 0
	}
	if x1 > c.width {
		x1 = c.width
	}
	var row strings.Builder
	var run strings.Builder
	runLayer := -2
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if style != nil {
			row.WriteString(style(runLayer, run.String()))
		} else {
			row.WriteString(run.String())
		}
		run.Reset()
	}
	for x := x0; x < x1; x++ {
		ch, layer := c.Cell(x, y)
		if layer != runLayer {
			flush()
			runLayer = layer
		}
		run.WriteRune(ch)
	}
	flush()
	return row.String()
}

// String renders the canvas without styling.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(nil), "\n")
}

// Fit returns a transform that scales points into a w x h dot area with the
// given margin, keeping the aspect ratio and centering the drawing.
func Fit(points []model.Point, w, h, margin int) func(model.Point) model.Point {
	identity := func(p model.Point) model.Point { return p }
	if len(points) == 0 || w <= 2*margin || h <= 2*margin {
		return identity
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if !finite(p) {
			continue
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if math.IsInf(maxX-minX, 0) || math.IsInf(maxY-minY, 0) {
		return identity
	}
	availW := float64(w - 1 - 2*margin)
	availH := float64(h - 1 - 2*margin)
	bw := maxX - minX
	bh := maxY - minY
	scale := 1.0
	switch {
	case bw > 0 && bh > 0:
		scale = math.Min(availW/bw, availH/bh)
	case bw > 0:
		scale = availW / bw
	case bh > 0:
		scale = availH / bh
	}
	offX := float64(margin) + (availW-bw*scale)/2
	offY := float64(margin) + (availH-bh*scale)/2
	return func(p model.Point) model.Point {
		return model.Pt((p.X-minX)*scale+offX, (p.Y-minY)*scale+offY)
	}
}

func finite(p model.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// clipSegment clips a-b to the box [0,w]x[0,h] (Liang-Barsky).
func clipSegment(a, b model.Point, w, h float64) (model.Point, model.Point, bool) {
	d := b.Sub(a)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-d.X, a.X},
		{d.X, w - a.X},
		{-d.Y, a.Y},
		{d.Y, h - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}
