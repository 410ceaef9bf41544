package scoring

import (
	"math"
	"time"
)

// Weights tunes how the three factors combine into a priority score.
type Weights struct {
	Urgency    float64
	Effort     float64
	Complexity float64
}

// DefaultWeights returns the production weighting: urgency dominates,
// effort and complexity break ties.
func DefaultWeights() Weights {
	return Weights{
		Urgency:    0.5,
		Effort:     0.3,
		Complexity: 0.2,
	}
}

const (
	// urgencyHorizonDays is the deadline distance at which urgency bottoms
	// out at 0. Overdue tasks push urgency above 1 before the final clamp.
	urgencyHorizonDays = 30.0

	// effortFullScaleHours is the effort estimate that maps to a factor of 1.
	effortFullScaleHours = 20.0

	// complexityMax is the top of the 1–5 complexity scale.
	complexityMax = 5.0
)

// Scorer computes priority scores from deadline, effort, and complexity.
type Scorer struct {
	weights Weights
}

// New creates a Scorer with the given weights.
func New(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score computes the priority of a task at the instant now.
//
// Each factor may individually leave the unit range (overdue urgency,
// oversized effort); only the final weighted sum is clamped to [0,1].
// The result is never NaN or Inf regardless of input.
func (s *Scorer) Score(due time.Time, effortHours float64, complexityLevel int, now time.Time) float64 {
	daysToDeadline := due.Sub(now).Hours() / 24

	urgency := (urgencyHorizonDays - daysToDeadline) / urgencyHorizonDays
	effort := effortHours / effortFullScaleHours
	complexity := float64(complexityLevel) / complexityMax

	priority := s.weights.Urgency*urgency +
		s.weights.Effort*effort +
		s.weights.Complexity*complexity

	if math.IsNaN(priority) {
		return 0
	}
	return clamp01(priority)
}

// Score computes a priority score with the default weights.
func Score(due time.Time, effortHours float64, complexityLevel int, now time.Time) float64 {
	return New(DefaultWeights()).Score(due, effortHours, complexityLevel, now)
}

func clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
