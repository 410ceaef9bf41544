package scoring

import (
	"math"
	"testing"
	"time"
)

func TestScore(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("due now with moderate effort", func(t *testing.T) {
		// urgency = 1.0, effort = 10/20 = 0.5, complexity = 3/5 = 0.6
		// 0.5*1.0 + 0.3*0.5 + 0.2*0.6 = 0.77
		got := Score(now, 10, 3, now)
		if math.Abs(got-0.77) > 1e-9 {
			t.Errorf("Score = %v, want 0.77", got)
		}
	})

	t.Run("heavily overdue clamps to 1", func(t *testing.T) {
		// urgency = (30-(-40))/30 ≈ 2.33, effort = 25/20 = 1.25, complexity = 1.0
		// raw ≈ 1.74 → clamped
		due := now.AddDate(0, 0, -40)
		if got := Score(due, 25, 5, now); got != 1.0 {
			t.Errorf("Score = %v, want 1.0", got)
		}
	})

	t.Run("far future clamps to 0", func(t *testing.T) {
		due := now.AddDate(2, 0, 0)
		got := Score(due, 0.5, 1, now)
		if got != 0.0 {
			t.Errorf("Score = %v, want 0.0", got)
		}
	})

	t.Run("fractional days to deadline", func(t *testing.T) {
		// 15 days out: urgency = 0.5 → 0.25 + 0.3*0.25 + 0.2*0.4 = 0.405
		due := now.AddDate(0, 0, 15)
		got := Score(due, 5, 2, now)
		if math.Abs(got-0.405) > 1e-9 {
			t.Errorf("Score = %v, want 0.405", got)
		}
	})

	t.Run("never NaN or Inf", func(t *testing.T) {
		cases := []struct {
			due        time.Time
			effort     float64
			complexity int
		}{
			{time.Time{}, 1, 1},
			{now, math.MaxFloat64, 5},
			{now.AddDate(1000, 0, 0), 0.0001, 1},
		}
		for _, tc := range cases {
			got := Score(tc.due, tc.effort, tc.complexity, now)
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("Score(%v, %v, %d) = %v", tc.due, tc.effort, tc.complexity, got)
			}
		}
	})
}

func TestScoreRangeInvariant(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	for daysOut := -400; daysOut <= 400; daysOut += 13 {
		for effort := 0.5; effort <= 100; effort += 9.5 {
			for complexity := 1; complexity <= 5; complexity++ {
				due := now.AddDate(0, 0, daysOut)
				got := Score(due, effort, complexity, now)
				if got < 0 || got > 1 {
					t.Fatalf("Score(%d days, %.1fh, %d) = %v out of [0,1]",
						daysOut, effort, complexity, got)
				}
			}
		}
	}
}

func TestCustomWeights(t *testing.T) {
	now := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	// Urgency-only weighting: score tracks the urgency factor alone.
	s := New(Weights{Urgency: 1})
	got := s.Score(now.AddDate(0, 0, 15), 100, 5, now)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("urgency-only Score = %v, want 0.5", got)
	}
}
