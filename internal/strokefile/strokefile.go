// Package strokefile reads and writes strokes as text, one "x,y" point per line.
package strokefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/verte-zerg/tuircle/internal/model"
)

// Load reads a stroke from path. "-" reads standard input.
func Load(path string) ([]model.Point, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only stroke file.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read parses points from r. Blank lines and lines starting with '#' are
// skipped; coordinates may be separated by a comma or whitespace.
func Read(r io.Reader) ([]model.Point, error) {
	var points []model.Point
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return points, nil
}

// Write prints points in the format Read accepts.
func Write(w io.Writer, points []model.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		x := strconv.FormatFloat(p.X, 'f', -1, 64)
		y := strconv.FormatFloat(p.Y, 'f', -1, 64)
		if _, err := fmt.Fprintf(bw, "%s,%s\n", x, y); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func parsePoint(line string) (model.Point, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
	if len(fields) != 2 {
		return model.Point{}, fmt.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid x %q", fields[0])
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return model.Point{}, fmt.Errorf("invalid y %q", fields[1])
	}
	return model.Pt(x, y), nil
}
