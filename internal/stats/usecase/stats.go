package usecase

import (
	"context"

	"smartstudy/internal/model"
	"smartstudy/internal/stats"
	"smartstudy/internal/stats/repository"
	"smartstudy/pkg/daybucket"
	"smartstudy/pkg/streaks"
)

// GetSummary returns the dashboard headline metrics.
func (uc *implUseCase) GetSummary(ctx context.Context, sc model.Scope) (stats.SummaryOutput, error) {
	snapshot, bucketer, err := uc.snapshot(ctx, sc)
	if err != nil {
		return stats.SummaryOutput{}, err
	}

	today := bucketer.Today(uc.now())
	days, counts := completionDays(snapshot.Events, bucketer)
	current, best := streaks.Streaks(days, today)

	var (
		todayCompleted int
		weekCompleted  int
		totalCompleted int
		activeCount    int
		activeScores   []float64
	)

	weekStart := daybucket.WindowStart(today, 7)
	for day, count := range counts {
		if day == today {
			todayCompleted = count
		}
		if !day.Before(weekStart) && !today.Before(day) {
			weekCompleted += count
		}
	}

	for _, t := range snapshot.Tasks {
		switch t.Status {
		case model.StatusCompleted:
			totalCompleted++
		case model.StatusActive:
			activeCount++
			activeScores = append(activeScores, t.PriorityScore)
		}
	}

	return stats.SummaryOutput{
		TodayCompleted: todayCompleted,
		WeekCompleted:  weekCompleted,
		TotalCompleted: totalCompleted,
		ActiveTasks:    activeCount,
		Streak:         current,
		BestStreak:     best,
		Consistency7d:  streaks.Consistency(days, today, 7),
		Consistency30d: streaks.Consistency(days, today, 30),
		AvgPriority:    streaks.AvgPriority(activeScores),
		CompletionRate: streaks.CompletionRate(totalCompleted, len(snapshot.Tasks)),
	}, nil
}

// GetWeekly returns the last-7-days completion series for the bar chart.
func (uc *implUseCase) GetWeekly(ctx context.Context, sc model.Scope) (stats.WeeklyOutput, error) {
	snapshot, bucketer, err := uc.snapshot(ctx, sc)
	if err != nil {
		return stats.WeeklyOutput{}, err
	}

	_, counts := completionDays(snapshot.Events, bucketer)
	series := streaks.WeeklySeries(counts, bucketer.Today(uc.now()))

	out := stats.WeeklyOutput{Days: make([]stats.DayCountOutput, len(series))}
	for i, dc := range series {
		out.Days[i] = stats.DayCountOutput{Date: dc.Date, Count: dc.Count}
		out.Total += dc.Count
	}
	return out, nil
}

// GetCategories returns the per-category task distribution for the
// donut chart. Categories with no tasks are omitted, not zero-filled.
func (uc *implUseCase) GetCategories(ctx context.Context, sc model.Scope) (stats.CategoriesOutput, error) {
	snapshot, _, err := uc.snapshot(ctx, sc)
	if err != nil {
		return stats.CategoriesOutput{}, err
	}

	type tally struct {
		count     int
		completed int
	}
	byCategory := make(map[model.Category]*tally)
	var order []model.Category

	for _, t := range snapshot.Tasks {
		entry, ok := byCategory[t.Category]
		if !ok {
			entry = &tally{}
			byCategory[t.Category] = entry
			order = append(order, t.Category)
		}
		entry.count++
		if t.Status == model.StatusCompleted {
			entry.completed++
		}
	}

	out := stats.CategoriesOutput{}
	for _, cat := range order {
		entry := byCategory[cat]
		out.Categories = append(out.Categories, stats.CategoryCountOutput{
			Category:  string(cat),
			Count:     entry.count,
			Completed: entry.completed,
		})
	}
	return out, nil
}

// GetHeatmap returns the 365-day activity grid.
func (uc *implUseCase) GetHeatmap(ctx context.Context, sc model.Scope) (stats.HeatmapOutput, error) {
	snapshot, bucketer, err := uc.snapshot(ctx, sc)
	if err != nil {
		return stats.HeatmapOutput{}, err
	}

	_, counts := completionDays(snapshot.Events, bucketer)
	result := streaks.Heatmap(counts, bucketer.Today(uc.now()), heatmapWindowDays, uc.thresholds)

	out := stats.HeatmapOutput{
		Days:               make([]stats.HeatmapDayOutput, len(result.Days)),
		TotalContributions: result.TotalContributions,
		CurrentStreak:      result.CurrentStreak,
		LongestStreak:      result.BestStreak,
	}
	for i, d := range result.Days {
		out.Days[i] = stats.HeatmapDayOutput{Date: d.Date, Count: d.Count, Level: d.Level}
	}
	return out, nil
}

// snapshot takes the single consistent read every query works from.
func (uc *implUseCase) snapshot(ctx context.Context, sc model.Scope) (repository.Snapshot, *daybucket.Bucketer, error) {
	snapshot, err := uc.repo.GetSnapshot(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.snapshot GetSnapshot: %v", err)
		return repository.Snapshot{}, nil, err
	}
	return snapshot, daybucket.NewOrUTC(snapshot.Timezone), nil
}

// completionDays buckets completion instants into owner-local days,
// returning both the distinct day list and the per-day counts.
func completionDays(events []model.CompletionEvent, bucketer *daybucket.Bucketer) ([]daybucket.Day, map[daybucket.Day]int) {
	counts := make(map[daybucket.Day]int, len(events))
	for _, ev := range events {
		counts[bucketer.LocalDay(ev.CompletedAt)]++
	}

	days := make([]daybucket.Day, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	return days, counts
}
