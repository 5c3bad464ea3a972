// Package scorer rates how close a stroke is to a circle.
package scorer

import (
	"math"

	"github.com/verte-zerg/tuircle/internal/model"
)

// Scoring constants. They are empirical and must stay as they are so scores
// remain comparable between versions.
const (
	MinPoints      = 10
	ClosureFactor  = 0.2
	VarianceFactor = 0.5
	VarianceWeight = 0.6
	ClosureWeight  = 0.4

	openClosureScore = 0.5
)

// Metrics holds the intermediate values behind a score.
type Metrics struct {
	Points          int
	Centroid        model.Point
	AvgRadius       float64
	RadiusStdDev    float64
	ClosureDistance float64
	Closed          bool
	VarianceScore   float64
	ClosureScore    float64
	RawScore        float64
}

// Measure computes the metrics of a stroke. It reports false when the stroke
// has fewer than MinPoints points.
func Measure(points []model.Point) (Metrics, bool) {
	n := len(points)
	if n < MinPoints {
		return Metrics{Points: n}, false
	}
	m := Metrics{Points: n}

	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	m.Centroid = model.Pt(sx/float64(n), sy/float64(n))

	dists := make([]float64, n)
	var sum float64
	for i, p := range points {
		dists[i] = p.Distance(m.Centroid)
		sum += dists[i]
	}
	m.AvgRadius = sum / float64(n)

	var sq float64
	for _, d := range dists {
		diff := d - m.AvgRadius
		sq += diff * diff
	}
	m.RadiusStdDev = math.Sqrt(sq / float64(n))

	m.ClosureDistance = points[0].Distance(points[n-1])
	m.Closed = isClosed(m.ClosureDistance, m.AvgRadius)

	m.VarianceScore = varianceScore(m.RadiusStdDev, m.AvgRadius)
	m.ClosureScore = openClosureScore
	if m.Closed {
		m.ClosureScore = 1
	}
	m.RawScore = VarianceWeight*m.VarianceScore + ClosureWeight*m.ClosureScore
	return m, true
}

// Evaluate scores a stroke. It never fails: short strokes are incomplete and
// degenerate geometry yields the worst result.
func Evaluate(points []model.Point) model.Result {
	m, ok := Measure(points)
	if !ok {
		return model.Result{Score: 0, Tier: model.TierIncomplete}
	}
	if !m.finite() {
		return model.Result{Score: 0, Tier: model.TierAbstract}
	}
	score := int(math.Round(m.RawScore * 100))
	score = clampInt(score, 0, 100)
	return model.Result{
		Score:  score,
		Tier:   TierFor(score),
		Closed: m.Closed,
	}
}

// TierFor maps a score to its feedback tier.
func TierFor(score int) model.Tier {
	switch {
	case score >= 95:
		return model.TierPerfect
	case score >= 85:
		return model.TierExcellent
	case score >= 75:
		return model.TierGreat
	case score >= 60:
		return model.TierGood
	case score >= 40:
		return model.TierOkay
	case score >= 20:
		return model.TierRetry
	default:
		return model.TierAbstract
	}
}

// isClosed uses a strict comparison: endpoints exactly at the threshold are open.
func isClosed(closureDistance, avgRadius float64) bool {
	return closureDistance < ClosureFactor*avgRadius
}

func varianceScore(stdDev, avgRadius float64) float64 {
	if avgRadius == 0 {
		return 0
	}
	v := 1 - stdDev/(VarianceFactor*avgRadius)
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func (m Metrics) finite() bool {
	for _, v := range []float64{m.Centroid.X, m.Centroid.Y, m.AvgRadius, m.RadiusStdDev, m.ClosureDistance, m.RawScore} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
