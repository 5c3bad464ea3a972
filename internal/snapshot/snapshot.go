// Package snapshot renders frames to PNG images.
//
// Frame points are logical pixels. Options.Scale maps them to device pixels
// so a snapshot can be exported at any density.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/verte-zerg/tuircle/internal/engine"
	"github.com/verte-zerg/tuircle/internal/i18n"
	"github.com/verte-zerg/tuircle/internal/model"
)

const (
	// DefaultWidth and DefaultHeight are the logical size used when unset.
	DefaultWidth  = 640
	DefaultHeight = 480
	// DefaultGridSpacing is the distance between grid lines in logical pixels.
	DefaultGridSpacing = 40

	maxNameAttempts = 1000

	strokeWidth = 3.0
	jointSides  = 12

	scoreSize   = 72.0
	messageSize = 24.0
	statsSize   = 18.0
)

var (
	backgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	gridColor       = color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	strokeColor     = color.RGBA{A: 0xff}
	overlayColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}
	textColor       = color.RGBA{A: 0xff}
)

// Options configure the output image.
type Options struct {
	// Width and Height are the logical size of the surface.
	Width  int
	Height int
	// Scale is the number of device pixels per logical pixel.
	Scale float64
	// GridSpacing is the grid step in logical pixels.
	GridSpacing int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Scale <= 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) {
		o.Scale = 1
	}
	if o.GridSpacing <= 0 {
		o.GridSpacing = DefaultGridSpacing
	}
	return o
}

// Render paints the frame: background, optional grid, the stroke and the
// result overlay once the stroke has been evaluated.
func Render(f engine.Frame, l *i18n.Localizer, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	w := int(math.Ceil(float64(opts.Width) * opts.Scale))
	h := int(math.Ceil(float64(opts.Height) * opts.Scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	if f.ShowGrid {
		drawGrid(img, opts)
	}
	drawStroke(img, f.Points, opts.Scale)
	if f.Result != nil {
		drawOverlay(img, f, l, opts)
	}
	return img
}

// Encode writes the frame as PNG.
func Encode(w io.Writer, f engine.Frame, l *i18n.Localizer, opts Options) error {
	if err := png.Encode(w, Render(f, l, opts)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Save writes the frame to a new file in dir and returns its path.
func Save(dir string, f engine.Frame, l *i18n.Localizer, opts Options) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	name := "tuircle-" + time.Now().Format("20060102-150405")
	if f.Result != nil {
		name += fmt.Sprintf("-%03d", f.Result.Score)
	}
	tmpFile, err := os.CreateTemp(dir, "snapshot-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := Encode(tmpFile, f, l, opts); err != nil {
		return "", err
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close snapshot: %w", err)
	}
	path, err := reserve(dir, name)
	if err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}

// reserve creates an empty file named after base, adding a counter suffix
// when earlier snapshots already took the name.
func reserve(dir, base string) (string, error) {
	for i := 1; i <= maxNameAttempts; i++ {
		name := base + ".png"
		if i > 1 {
			name = fmt.Sprintf("%s-%d.png", base, i)
		}
		path := filepath.Join(dir, name)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return "", fmt.Errorf("failed to create snapshot: %w", err)
		}
		if cerr := file.Close(); cerr != nil {
			// Best-effort close of an empty placeholder.
			_ = cerr
		}
		return path, nil
	}
	return "", fmt.Errorf("failed to create snapshot: too many files named %s", base)
}

func drawGrid(img *image.RGBA, opts Options) {
	bounds := img.Bounds()
	src := image.NewUniform(gridColor)
	line := int(math.Max(1, math.Round(opts.Scale)))
	for x := 0; x < opts.Width; x += opts.GridSpacing {
		dx := int(math.Round(float64(x) * opts.Scale))
		draw.Draw(img, image.Rect(dx, 0, dx+line, bounds.Dy()), src, image.Point{}, draw.Src)
	}
	for y := 0; y < opts.Height; y += opts.GridSpacing {
		dy := int(math.Round(float64(y) * opts.Scale))
		draw.Draw(img, image.Rect(0, dy, bounds.Dx(), dy+line), src, image.Point{}, draw.Src)
	}
}

// drawStroke draws every segment as a quad and every vertex as a disc, which
// gives round joins and caps.
func drawStroke(img *image.RGBA, points []model.Point, scale float64) {
	pts := make([]model.Point, 0, len(points))
	for _, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			continue
		}
		pts = append(pts, p.Scale(scale))
	}
	if len(pts) < 2 {
		return
	}
	src := image.NewUniform(strokeColor)
	half := strokeWidth * scale / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		length := math.Hypot(d.X, d.Y)
		if length == 0 {
			continue
		}
		n := model.Pt(-d.Y/length*half, d.X/length*half)
		fillPolygon(img, src, []model.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	for _, p := range pts {
		fillPolygon(img, src, disc(p, half))
	}
}

func disc(c model.Point, r float64) []model.Point {
	poly := make([]model.Point, jointSides)
	for i := range poly {
		a := 2 * math.Pi * float64(i) / jointSides
		poly[i] = model.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return poly
}

// fillPolygon rasterizes one polygon within its on-screen bounding box.
func fillPolygon(dst draw.Image, src image.Image, poly []model.Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1)
	clipped := r.Intersect(dst.Bounds())
	if clipped.Empty() {
		return
	}
	z := vector.NewRasterizer(clipped.Dx(), clipped.Dy())
	ox, oy := float32(clipped.Min.X), float32(clipped.Min.Y)
	z.MoveTo(float32(poly[0].X)-ox, float32(poly[0].Y)-oy)
	for _, p := range poly[1:] {
		z.LineTo(float32(p.X)-ox, float32(p.Y)-oy)
	}
	z.ClosePath()
	z.Draw(dst, clipped, src, image.Point{})
}

func drawOverlay(img *image.RGBA, f engine.Frame, l *i18n.Localizer, opts Options) {
	draw.Draw(img, img.Bounds(), image.NewUniform(overlayColor), image.Point{}, draw.Over)

	cx := float64(opts.Width) / 2
	cy := float64(opts.Height) / 2
	lines := []struct {
		text string
		size float64
		y    float64
	}{
		{fmt.Sprintf("%d/100", f.Result.Score), scoreSize, cy - 50},
		{l.T(f.Result.Tier.MessageKey()), messageSize, cy + 30},
		{fmt.Sprintf("%s: %d | %s: %d", l.T(i18n.KeyBestScore), f.Stats.BestScore, l.T(i18n.KeyAttempts), f.Stats.Attempts), statsSize, cy + 70},
	}
	for _, line := range lines {
		drawText(img, Printable(line.text), cx, line.y, line.size, opts)
	}
}

// drawText renders text with the fixed bitmap face and scales it to the
// requested pixel size, centered at (cx, cy) in logical pixels.
func drawText(img *image.RGBA, text string, cx, cy, size float64, opts Options) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	metrics := face.Metrics()
	tw := font.MeasureString(face, text).Ceil()
	th := metrics.Height.Ceil()
	if tw <= 0 || th <= 0 {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, tw, th))
	d := &font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)

	factor := size / float64(th)
	if maxW := float64(opts.Width) * 0.9; float64(tw)*factor > maxW {
		factor = maxW / float64(tw)
	}
	sw := float64(tw) * factor * opts.Scale
	sh := float64(th) * factor * opts.Scale
	x0 := int(math.Round(cx*opts.Scale - sw/2))
	y0 := int(math.Round(cy*opts.Scale - sh/2))
	dst := image.Rect(x0, y0, x0+int(math.Round(sw)), y0+int(math.Round(sh)))
	if dst.Empty() {
		return
	}
	scaled := image.NewAlpha(image.Rect(0, 0, dst.Dx(), dst.Dy()))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
	draw.DrawMask(img, dst, image.NewUniform(textColor), image.Point{}, scaled, image.Point{}, draw.Over)
}

// Printable folds text to the ASCII range covered by the bitmap face:
// accents are stripped and symbols outside the face are dropped.
func Printable(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	var b strings.Builder
	for _, r := range folded {
		if r >= 0x20 && r < 0x7f {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
