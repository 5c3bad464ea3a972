package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/tuircle/internal/i18n"
	"github.com/verte-zerg/tuircle/internal/model"
)

func TestSparklineFlat(t *testing.T) {
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("expected flat midline, got %q", got)
	}
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

func TestScoreSparklineFixedScale(t *testing.T) {
	if got := ScoreSparkline([]int{0, 100}, 0); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := ScoreSparkline([]int{100, 100}, 0); got != "@@" {
		t.Fatalf("expected equal high scores to stay high, got %q", got)
	}
	if got := ScoreSparkline([]int{0, 0, 100}, 2); got != " @" {
		t.Fatalf("expected window of 2, got %q", got)
	}
	if got := ScoreSparkline([]int{50, 150, -5}, 0); got != "+@ " {
		t.Fatalf("expected out-of-range scores to clamp, got %q", got)
	}
	if got := ScoreSparkline(nil, 5); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

func TestAverage(t *testing.T) {
	if got := Average([]int{20, 40, 90}); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := Average(nil); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	s := model.SessionStats{Attempts: 3, BestScore: 88, Scores: []int{20, 88, 70}}
	if err := RenderSummary(&buf, s, i18n.New("en-US")); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Best score: 88 | Attempts: 3") {
		t.Fatalf("missing attempts line: %q", out)
	}
	if !strings.Contains(out, "avg 59.3") {
		t.Fatalf("missing average: %q", out)
	}
}

func TestRenderEvaluation(t *testing.T) {
	var pts []model.Point
	for i := 0; i < 36; i++ {
		a := 2 * math.Pi * float64(i) / 35
		pts = append(pts, model.Pt(100*math.Cos(a), 100*math.Sin(a)))
	}
	var buf bytes.Buffer
	res, err := RenderEvaluation(&buf, pts, i18n.New("en-US"))
	if err != nil {
		t.Fatalf("RenderEvaluation failed: %v", err)
	}
	if res.Tier != model.TierPerfect {
		t.Fatalf("expected perfect tier, got %s", res.Tier)
	}
	out := buf.String()
	for _, needle := range []string{"/100", "Perfect circle!", "Avg radius", "Closed", "yes", "perfect"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("output missing %q:\n%s", needle, out)
		}
	}
}

func TestRenderEvaluationShortStroke(t *testing.T) {
	var buf bytes.Buffer
	res, err := RenderEvaluation(&buf, []model.Point{model.Pt(1, 1)}, i18n.New("es-ES"))
	if err != nil {
		t.Fatalf("RenderEvaluation failed: %v", err)
	}
	if res.Tier != model.TierIncomplete {
		t.Fatalf("expected incomplete, got %s", res.Tier)
	}
	if !strings.Contains(buf.String(), "¡Dibuja un círculo completo!") {
		t.Fatalf("expected localized feedback, got %q", buf.String())
	}
}
