package streaks

import (
	"math"
	"testing"
	"time"

	"smartstudy/pkg/daybucket"
)

var base = daybucket.Day{Year: 2024, Month: time.March, Date: 10}

// days builds a day slice from offsets relative to base.
func days(offsets ...int) []daybucket.Day {
	out := make([]daybucket.Day, len(offsets))
	for i, o := range offsets {
		out[i] = base.AddDays(o)
	}
	return out
}

func TestStreaks(t *testing.T) {
	t.Run("no completions", func(t *testing.T) {
		current, best := Streaks(nil, base)
		if current != 0 || best != 0 {
			t.Errorf("got current=%d best=%d, want 0/0", current, best)
		}
	})

	t.Run("gap splits runs", func(t *testing.T) {
		// {d, d+1, d+2, d+4, d+5}: best run is the 3-day one.
		_, best := Streaks(days(0, 1, 2, 4, 5), base.AddDays(5))
		if best != 3 {
			t.Errorf("best = %d, want 3", best)
		}
	})

	t.Run("current ends today", func(t *testing.T) {
		current, _ := Streaks(days(-2, -1, 0), base)
		if current != 3 {
			t.Errorf("current = %d, want 3", current)
		}
	})

	t.Run("grace period keeps yesterday's run alive", func(t *testing.T) {
		// Run of 4 ending yesterday, nothing today yet.
		current, _ := Streaks(days(-4, -3, -2, -1), base)
		if current != 4 {
			t.Errorf("current = %d, want 4 (grace period)", current)
		}
	})

	t.Run("two stale days break the streak", func(t *testing.T) {
		current, _ := Streaks(days(-5, -4, -3, -2), base)
		if current != 0 {
			t.Errorf("current = %d, want 0", current)
		}
	})

	t.Run("duplicate days count once", func(t *testing.T) {
		current, best := Streaks(days(0, 0, 0, -1, -1), base)
		if current != 2 || best != 2 {
			t.Errorf("got current=%d best=%d, want 2/2", current, best)
		}
	})

	t.Run("single active day", func(t *testing.T) {
		current, best := Streaks(days(0), base)
		if current != 1 || best != 1 {
			t.Errorf("got current=%d best=%d, want 1/1", current, best)
		}
	})
}

func TestWeeklySeries(t *testing.T) {
	counts := map[daybucket.Day]int{
		base:             2,
		base.AddDays(-3): 1,
		base.AddDays(-9): 5, // outside the window
	}

	series := WeeklySeries(counts, base)

	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}
	if series[0].Date != base.AddDays(-6) {
		t.Errorf("series starts at %v, want %v", series[0].Date, base.AddDays(-6))
	}
	if series[6].Date != base || series[6].Count != 2 {
		t.Errorf("series should end today with count 2: %+v", series[6])
	}
	if series[3].Count != 1 {
		t.Errorf("day -3 count = %d, want 1", series[3].Count)
	}

	zeroFilled := 0
	for _, dc := range series {
		if dc.Count == 0 {
			zeroFilled++
		}
	}
	if zeroFilled != 5 {
		t.Errorf("zero-filled days = %d, want 5", zeroFilled)
	}
}

func TestThresholdLevels(t *testing.T) {
	th := DefaultThresholds()

	wants := map[int]int{0: 0, 1: 1, 2: 2, 3: 2, 4: 3, 5: 3, 6: 4, 10: 4}
	for count, want := range wants {
		if got := th.Level(count); got != want {
			t.Errorf("Level(%d) = %d, want %d", count, got, want)
		}
	}
}

func TestHeatmap(t *testing.T) {
	counts := map[daybucket.Day]int{
		base:             6,
		base.AddDays(-1): 2,
		base.AddDays(-2): 1,
	}

	result := Heatmap(counts, base, 365, DefaultThresholds())

	if len(result.Days) != 365 {
		t.Fatalf("heatmap length = %d, want 365", len(result.Days))
	}
	if result.TotalContributions != 9 {
		t.Errorf("total contributions = %d, want 9", result.TotalContributions)
	}

	last := result.Days[len(result.Days)-1]
	if last.Date != base || last.Level != 4 {
		t.Errorf("today cell = %+v, want level 4 on %v", last, base)
	}

	if result.CurrentStreak != 3 || result.BestStreak != 3 {
		t.Errorf("streaks = %d/%d, want 3/3", result.CurrentStreak, result.BestStreak)
	}
}

func TestHeatmapEmpty(t *testing.T) {
	result := Heatmap(nil, base, 30, DefaultThresholds())

	if len(result.Days) != 30 {
		t.Fatalf("heatmap length = %d, want 30", len(result.Days))
	}
	if result.TotalContributions != 0 || result.CurrentStreak != 0 || result.BestStreak != 0 {
		t.Errorf("empty heatmap should be all zeros: %+v", result)
	}
	for _, d := range result.Days {
		if d.Count != 0 || d.Level != 0 {
			t.Fatalf("expected empty cell, got %+v", d)
		}
	}
}

func TestConsistency(t *testing.T) {
	t.Run("three active days in a week", func(t *testing.T) {
		got := Consistency(days(0, -2, -4), base, 7)
		if math.Abs(got-3.0/7.0) > 1e-9 {
			t.Errorf("Consistency = %v, want 3/7", got)
		}
	})

	t.Run("days outside the window are ignored", func(t *testing.T) {
		got := Consistency(days(0, -8, -30), base, 7)
		if math.Abs(got-1.0/7.0) > 1e-9 {
			t.Errorf("Consistency = %v, want 1/7", got)
		}
	})

	t.Run("zero window", func(t *testing.T) {
		if got := Consistency(days(0), base, 0); got != 0 {
			t.Errorf("Consistency = %v, want 0", got)
		}
	})
}

func TestCompletionRate(t *testing.T) {
	if got := CompletionRate(3, 4); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("CompletionRate = %v, want 0.75", got)
	}
	// Zero-guard: no tasks means 0, not NaN.
	if got := CompletionRate(0, 0); got != 0 || math.IsNaN(got) {
		t.Errorf("CompletionRate(0,0) = %v, want 0", got)
	}
}

func TestAvgPriority(t *testing.T) {
	if got := AvgPriority([]float64{0.2, 0.4, 0.9}); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("AvgPriority = %v, want 0.5", got)
	}
	if got := AvgPriority(nil); got != 0 {
		t.Errorf("AvgPriority(nil) = %v, want 0", got)
	}
}
