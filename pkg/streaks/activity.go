package streaks

import "smartstudy/pkg/daybucket"

// DayCount is the number of completions attributed to a single local day.
type DayCount struct {
	Date  daybucket.Day
	Count int
}

// WeeklySeries returns completion counts for the last 7 local days ending
// at today, oldest first, zero-filled for inactive days. The result always
// has exactly 7 entries.
func WeeklySeries(counts map[daybucket.Day]int, today daybucket.Day) []DayCount {
	const window = 7

	series := make([]DayCount, 0, window)
	for d := daybucket.WindowStart(today, window); !today.Before(d); d = d.AddDays(1) {
		series = append(series, DayCount{Date: d, Count: counts[d]})
	}
	return series
}

// Thresholds are the inclusive upper count bounds for heatmap levels 1–3.
// Counts of zero are level 0; counts above High are level 4.
type Thresholds struct {
	Low  int
	Mid  int
	High int
}

// DefaultThresholds returns the standard quantization:
// 0 → 0, 1 → 1, 2–3 → 2, 4–5 → 3, ≥6 → 4.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 1, Mid: 3, High: 5}
}

// Level maps a day's completion count to its heatmap intensity in [0,4].
func (t Thresholds) Level(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= t.Low:
		return 1
	case count <= t.Mid:
		return 2
	case count <= t.High:
		return 3
	default:
		return 4
	}
}

// HeatmapDay is one cell of the activity heatmap.
type HeatmapDay struct {
	Date  daybucket.Day
	Count int
	Level int
}

// HeatmapResult is the quantized long-window activity grid plus the
// streaks observed over the same window.
type HeatmapResult struct {
	Days               []HeatmapDay
	TotalContributions int
	CurrentStreak      int
	BestStreak         int
}

// Heatmap quantizes per-day completion counts over the trailing window
// ending at today. Days without activity appear with count 0 and level 0.
func Heatmap(counts map[daybucket.Day]int, today daybucket.Day, window int, th Thresholds) HeatmapResult {
	result := HeatmapResult{Days: make([]HeatmapDay, 0, window)}

	var active []daybucket.Day
	for d := daybucket.WindowStart(today, window); !today.Before(d); d = d.AddDays(1) {
		count := counts[d]
		result.Days = append(result.Days, HeatmapDay{
			Date:  d,
			Count: count,
			Level: th.Level(count),
		})
		result.TotalContributions += count
		if count > 0 {
			active = append(active, d)
		}
	}

	result.CurrentStreak, result.BestStreak = Streaks(active, today)
	return result
}
