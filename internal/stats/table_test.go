package stats

import "testing"

func TestTableAlignsColumns(t *testing.T) {
	tbl := newTable("Metric", "Value").alignRight(1)
	tbl.add("Points", "36")
	tbl.add("Avg radius", "99.92")

	lines := tbl.lines()
	expected := []string{
		"Metric     Value",
		"---------- -----",
		"Points        36",
		"Avg radius 99.92",
	}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d", len(expected), len(lines))
	}
	for i := range expected {
		if lines[i] != expected[i] {
			t.Fatalf("line %d: expected %q, got %q", i, expected[i], lines[i])
		}
	}
}

func TestTableWideRunes(t *testing.T) {
	tbl := newTable("A", "B")
	tbl.add("🎯", "x")
	lines := tbl.lines()
	if lines[0] != "A  B" {
		t.Fatalf("expected emoji to count as two columns, got %q", lines[0])
	}
	if lines[2] != "🎯 x" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestTableRaggedRows(t *testing.T) {
	tbl := newTable()
	tbl.add("a", "bb")
	tbl.add("ccc")
	lines := tbl.lines()
	if len(lines) != 2 || lines[0] != "a   bb" || lines[1] != "ccc" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
