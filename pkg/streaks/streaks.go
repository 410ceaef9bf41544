package streaks

import (
	"sort"

	"smartstudy/pkg/daybucket"
)

// Streaks derives the current and best consecutive-day streaks from the
// days on which at least one completion happened. Duplicate days are
// collapsed; order does not matter.
//
// The current streak has a one-day grace period: a run whose last active
// day is yesterday still counts until today ends without activity. Only
// when both today and yesterday are empty is the streak 0.
func Streaks(days []daybucket.Day, today daybucket.Day) (current, best int) {
	set := toSet(days)
	if len(set) == 0 {
		return 0, 0
	}

	return currentStreak(set, today), bestStreak(set)
}

func currentStreak(set map[daybucket.Day]bool, today daybucket.Day) int {
	cursor := today
	if !set[cursor] {
		cursor = today.AddDays(-1)
	}
	if !set[cursor] {
		return 0
	}

	streak := 0
	for set[cursor] {
		streak++
		cursor = cursor.AddDays(-1)
	}
	return streak
}

func bestStreak(set map[daybucket.Day]bool) int {
	days := make([]daybucket.Day, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].DaysUntil(days[i]) == 1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

func toSet(days []daybucket.Day) map[daybucket.Day]bool {
	set := make(map[daybucket.Day]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}
