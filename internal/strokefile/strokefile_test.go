package strokefile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tuircle/internal/model"
)

func TestReadFormats(t *testing.T) {
	input := "# drawn by hand\n1,2\n\n3.5 -4\n 5\t6 \n7;8\n"
	pts, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	expected := []model.Point{model.Pt(1, 2), model.Pt(3.5, -4), model.Pt(5, 6), model.Pt(7, 8)}
	if len(pts) != len(expected) {
		t.Fatalf("expected %d points, got %d", len(expected), len(pts))
	}
	for i, p := range expected {
		if pts[i] != p {
			t.Fatalf("expected %v at index %d, got %v", p, i, pts[i])
		}
	}
}

func TestReadReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("1,2\n3,x\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected error on line 2, got %v", err)
	}
	if _, err := Read(strings.NewReader("1,2,3\n")); err == nil {
		t.Fatalf("expected error for three coordinates")
	}
}

func TestWriteThenLoad(t *testing.T) {
	pts := []model.Point{model.Pt(0.25, 100), model.Pt(-3, 1e-3)}
	var buf bytes.Buffer
	if err := Write(&buf, pts); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "stroke.txt")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 2 || got[0] != pts[0] || got[1] != pts[1] {
		t.Fatalf("unexpected points: %v", got)
	}
}
