// Package stats contains score summaries and text reporting.
package stats

import (
	"fmt"
	"io"
	"math"

	"github.com/verte-zerg/tuircle/internal/i18n"
	"github.com/verte-zerg/tuircle/internal/model"
	"github.com/verte-zerg/tuircle/internal/scorer"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline scaled to the values' own range.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return sparkline(values, lo, hi)
}

// ScoreSparkline renders the last n scores on a fixed 0-100 scale, so a run of
// equal scores keeps its height instead of collapsing to a midline.
func ScoreSparkline(scores []int, n int) string {
	if n > 0 && len(scores) > n {
		scores = scores[len(scores)-n:]
	}
	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = float64(s)
	}
	return sparkline(values, 0, 100)
}

// sparkline maps each value in [lo, hi] onto sparkChars. An empty range draws
// the midline.
func sparkline(values []float64, lo, hi float64) string {
	span := hi - lo
	last := len(sparkChars) - 1
	out := make([]byte, len(values))
	for i, v := range values {
		if span < 1e-9 {
			out[i] = sparkChars[len(sparkChars)/2]
			continue
		}
		idx := int(math.Round((v - lo) / span * float64(last)))
		out[i] = sparkChars[max(0, min(last, idx))]
	}
	return string(out)
}

// Average returns the mean score, or 0 without scores.
func Average(scores []int) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

// RenderSummary prints the attempts line for a run.
func RenderSummary(w io.Writer, s model.SessionStats, l *i18n.Localizer) error {
	if _, err := fmt.Fprintf(w, "%s: %d | %s: %d\n", l.T(i18n.KeyBestScore), s.BestScore, l.T(i18n.KeyAttempts), s.Attempts); err != nil {
		return err
	}
	if len(s.Scores) > 1 {
		if _, err := fmt.Fprintf(w, "[%s] avg %.1f\n", ScoreSparkline(s.Scores, 0), Average(s.Scores)); err != nil {
			return err
		}
	}
	return nil
}

// RenderEvaluation prints the score, feedback and metric table for a stroke.
func RenderEvaluation(w io.Writer, points []model.Point, l *i18n.Localizer) (model.Result, error) {
	result := scorer.Evaluate(points)
	if _, err := fmt.Fprintf(w, "%d/100  %s\n", result.Score, l.T(result.Tier.MessageKey())); err != nil {
		return result, err
	}
	m, ok := scorer.Measure(points)
	if !ok {
		_, err := fmt.Fprintf(w, "points: %d (need at least %d)\n", m.Points, scorer.MinPoints)
		return result, err
	}
	closed := "no"
	if m.Closed {
		closed = "yes"
	}
	tbl := newTable("Metric", "Value").alignRight(1)
	tbl.add("Points", fmt.Sprintf("%d", m.Points))
	tbl.add("Centroid", fmt.Sprintf("(%.2f, %.2f)", m.Centroid.X, m.Centroid.Y))
	tbl.add("Avg radius", fmt.Sprintf("%.2f", m.AvgRadius))
	tbl.add("Radius std-dev", fmt.Sprintf("%.2f", m.RadiusStdDev))
	tbl.add("Closure distance", fmt.Sprintf("%.2f", m.ClosureDistance))
	tbl.add("Closed", closed)
	tbl.add("Variance score", fmt.Sprintf("%.3f", m.VarianceScore))
	tbl.add("Closure score", fmt.Sprintf("%.3f", m.ClosureScore))
	tbl.add("Tier", string(result.Tier))
	for _, line := range tbl.lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return result, err
		}
	}
	return result, nil
}
