package capture

import (
	"testing"

	"github.com/verte-zerg/tuircle/internal/model"
)

func TestCaptureSingleStroke(t *testing.T) {
	var c Capture
	if !c.Begin(Primary, model.Pt(1, 1)) {
		t.Fatalf("expected begin to succeed")
	}
	if c.Begin(Primary, model.Pt(9, 9)) {
		t.Fatalf("expected second begin to be rejected")
	}
	c.Add(Primary, model.Pt(2, 2))
	pts, ok := c.Freeze(Primary)
	if !ok {
		t.Fatalf("expected freeze to succeed")
	}
	if len(pts) != 2 || pts[0] != model.Pt(1, 1) || pts[1] != model.Pt(2, 2) {
		t.Fatalf("unexpected points: %v", pts)
	}
	if c.Add(Primary, model.Pt(3, 3)) {
		t.Fatalf("expected add after freeze to be dropped")
	}
	if c.Begin(Primary, model.Pt(3, 3)) {
		t.Fatalf("expected begin on frozen stroke to be rejected")
	}
	if c.Len() != 2 {
		t.Fatalf("expected frozen stroke to keep 2 points, got %d", c.Len())
	}
}

func TestCaptureIgnoresOtherContacts(t *testing.T) {
	var c Capture
	c.Begin(Contact(1), model.Pt(0, 0))
	if c.Add(Contact(2), model.Pt(5, 5)) {
		t.Fatalf("expected sample from second contact to be dropped")
	}
	if _, ok := c.Freeze(Contact(2)); ok {
		t.Fatalf("expected release of second contact to be ignored")
	}
	if !c.Add(Contact(1), model.Pt(1, 0)) {
		t.Fatalf("expected sample from owning contact to be kept")
	}
	if _, ok := c.Freeze(AnyContact); !ok {
		t.Fatalf("expected release without contact to end the stroke")
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 points, got %d", c.Len())
	}
}

func TestCapturePointsIsCopy(t *testing.T) {
	var c Capture
	c.Begin(Primary, model.Pt(1, 1))
	pts := c.Points()
	pts[0] = model.Pt(7, 7)
	if c.Points()[0] != model.Pt(1, 1) {
		t.Fatalf("expected Points to return a copy")
	}
}

func TestCaptureReset(t *testing.T) {
	var c Capture
	c.Begin(Primary, model.Pt(1, 1))
	c.Freeze(Primary)
	c.Reset()
	if c.Len() != 0 || c.Live() || c.Frozen() {
		t.Fatalf("expected empty capture after reset")
	}
	if !c.Begin(Primary, model.Pt(2, 2)) {
		t.Fatalf("expected begin after reset to succeed")
	}
}
