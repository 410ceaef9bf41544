package streaks

import "smartstudy/pkg/daybucket"

// Consistency returns the fraction of the trailing window (ending at
// today, inclusive) that had at least one completion. Days outside the
// window are ignored.
func Consistency(days []daybucket.Day, today daybucket.Day, window int) float64 {
	if window <= 0 {
		return 0
	}

	set := toSet(days)
	start := daybucket.WindowStart(today, window)

	active := 0
	for d := range set {
		if !d.Before(start) && !today.Before(d) {
			active++
		}
	}
	return float64(active) / float64(window)
}

// CompletionRate returns completed/total, or 0 when there are no tasks.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}

// AvgPriority returns the arithmetic mean of the given priority scores,
// or 0 when there are none.
func AvgPriority(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
