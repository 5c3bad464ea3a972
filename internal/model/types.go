// Package model defines shared data structures.
package model

import "math"

// Point is a position on the drawing surface in logical coordinates.
type Point struct {
	X, Y float64
}

// Pt is a shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Tier is the qualitative feedback bucket for a score.
type Tier string

// Tiers, from worst to best. TierIncomplete is reserved for strokes too short to judge.
const (
	TierIncomplete Tier = "incomplete"
	TierAbstract   Tier = "abstract"
	TierRetry      Tier = "retry"
	TierOkay       Tier = "okay"
	TierGood       Tier = "good"
	TierGreat      Tier = "great"
	TierExcellent  Tier = "excellent"
	TierPerfect    Tier = "perfect"
)

// MessageKey returns the localization key of the feedback line for the tier.
func (t Tier) MessageKey() string {
	switch t {
	case TierPerfect:
		return "perfectCircle"
	case TierExcellent:
		return "excellent"
	case TierGreat:
		return "greatJob"
	case TierGood:
		return "goodEffort"
	case TierOkay:
		return "notBad"
	case TierRetry:
		return "anotherShot"
	case TierAbstract:
		return "abstractArt"
	default:
		return "drawCompleteCircle"
	}
}

// Result is the evaluation of one finished stroke.
type Result struct {
	Score  int
	Tier   Tier
	Closed bool
}

// SessionStats tracks attempts and the best score for one run of the program.
type SessionStats struct {
	Attempts  int
	BestScore int
	// Scores holds every evaluated score of this run, oldest first.
	Scores []int
}

// Record accounts for one completed evaluation.
func (s *SessionStats) Record(r Result) {
	s.Attempts++
	if r.Score > s.BestScore {
		s.BestScore = r.Score
	}
	s.Scores = append(s.Scores, r.Score)
}

// Clone returns a copy that shares no memory with s.
func (s SessionStats) Clone() SessionStats {
	out := s
	if s.Scores != nil {
		out.Scores = append([]int(nil), s.Scores...)
	}
	return out
}
