package usecase

import (
	"context"
	"testing"
	"time"

	"smartstudy/internal/model"
	"smartstudy/internal/stats"
	"smartstudy/internal/stats/repository"
	"smartstudy/pkg/daybucket"
)

var testScope = model.Scope{UserID: "user-1", Email: "student@example.com"}

func newTestUseCase(snapshot repository.Snapshot, at time.Time) (*implUseCase, *mockSnapshotRepo) {
	repo := &mockSnapshotRepo{snapshot: snapshot}
	uc := New(repo, &mockLogger{})
	uc.now = func() time.Time { return at }
	return uc, repo
}

func utc(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func event(at time.Time) model.CompletionEvent {
	return model.CompletionEvent{
		ID:          "ev-" + at.Format("20060102T15"),
		UserID:      testScope.UserID,
		TaskID:      "task-x",
		Category:    model.CategoryGeneral,
		CompletedAt: at,
	}
}

func TestGetSummary(t *testing.T) {
	ctx := context.Background()
	now := utc(2024, time.March, 10, 12)

	t.Run("aggregates counts, streaks and rates", func(t *testing.T) {
		snapshot := repository.Snapshot{
			Timezone: "UTC",
			Tasks: []model.Task{
				{ID: "t1", Status: model.StatusActive, PriorityScore: 0.8},
				{ID: "t2", Status: model.StatusActive, PriorityScore: 0.4},
				{ID: "t3", Status: model.StatusCompleted, PriorityScore: 0.9},
				{ID: "t4", Status: model.StatusCompleted, PriorityScore: 0.1},
			},
			Events: []model.CompletionEvent{
				event(utc(2024, time.March, 10, 9)),
				event(utc(2024, time.March, 10, 15)),
				event(utc(2024, time.March, 9, 8)),
				event(utc(2024, time.March, 1, 8)),
			},
		}
		uc, _ := newTestUseCase(snapshot, now)

		out, err := uc.GetSummary(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.TodayCompleted != 2 {
			t.Errorf("expected 2 completed today, got %d", out.TodayCompleted)
		}
		if out.WeekCompleted != 3 {
			t.Errorf("expected 3 completed this week, got %d", out.WeekCompleted)
		}
		if out.TotalCompleted != 2 {
			t.Errorf("expected 2 total completed tasks, got %d", out.TotalCompleted)
		}
		if out.ActiveTasks != 2 {
			t.Errorf("expected 2 active tasks, got %d", out.ActiveTasks)
		}
		if out.Streak != 2 {
			t.Errorf("expected current streak 2, got %d", out.Streak)
		}
		if out.BestStreak != 2 {
			t.Errorf("expected best streak 2, got %d", out.BestStreak)
		}
		if want := 0.6; !almostEqual(out.AvgPriority, want) {
			t.Errorf("expected avg priority %v over active tasks, got %v", want, out.AvgPriority)
		}
		if want := 0.5; !almostEqual(out.CompletionRate, want) {
			t.Errorf("expected completion rate %v, got %v", want, out.CompletionRate)
		}
		if want := 2.0 / 7.0; !almostEqual(out.Consistency7d, want) {
			t.Errorf("expected 7d consistency %v, got %v", want, out.Consistency7d)
		}
		if want := 3.0 / 30.0; !almostEqual(out.Consistency30d, want) {
			t.Errorf("expected 30d consistency %v, got %v", want, out.Consistency30d)
		}
	})

	t.Run("streak survives an empty today via grace", func(t *testing.T) {
		snapshot := repository.Snapshot{
			Timezone: "UTC",
			Events: []model.CompletionEvent{
				event(utc(2024, time.March, 9, 8)),
				event(utc(2024, time.March, 8, 8)),
			},
		}
		uc, _ := newTestUseCase(snapshot, now)

		out, err := uc.GetSummary(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Streak != 2 {
			t.Errorf("expected streak 2 under grace, got %d", out.Streak)
		}
	})

	t.Run("empty owner yields all zeros", func(t *testing.T) {
		uc, _ := newTestUseCase(repository.Snapshot{Timezone: "UTC"}, now)

		out, err := uc.GetSummary(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != (stats.SummaryOutput{}) {
			t.Errorf("expected zero summary, got %+v", out)
		}
	})

	t.Run("attributes completions to owner-local days", func(t *testing.T) {
		// 03:00 UTC on March 10 is still March 9 in New York.
		snapshot := repository.Snapshot{
			Timezone: "America/New_York",
			Events: []model.CompletionEvent{
				event(utc(2024, time.March, 10, 3)),
			},
		}
		uc, _ := newTestUseCase(snapshot, now)

		out, err := uc.GetSummary(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TodayCompleted != 0 {
			t.Errorf("expected 0 completed today in owner timezone, got %d", out.TodayCompleted)
		}
		if out.Streak != 1 {
			t.Errorf("expected streak 1 from yesterday's completion, got %d", out.Streak)
		}
	})

	t.Run("propagates snapshot errors", func(t *testing.T) {
		uc, repo := newTestUseCase(repository.Snapshot{}, now)
		repo.err = repository.ErrFailedToSnapshot

		if _, err := uc.GetSummary(ctx, testScope); err != repository.ErrFailedToSnapshot {
			t.Errorf("expected snapshot error, got %v", err)
		}
	})
}

func TestGetWeekly(t *testing.T) {
	ctx := context.Background()
	now := utc(2024, time.March, 10, 12)

	t.Run("always returns seven zero-filled days ending today", func(t *testing.T) {
		snapshot := repository.Snapshot{
			Timezone: "UTC",
			Events: []model.CompletionEvent{
				event(utc(2024, time.March, 10, 9)),
				event(utc(2024, time.March, 10, 15)),
				event(utc(2024, time.March, 7, 8)),
				event(utc(2024, time.February, 1, 8)),
			},
		}
		uc, _ := newTestUseCase(snapshot, now)

		out, err := uc.GetWeekly(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(out.Days))
		}

		first := daybucket.Day{Year: 2024, Month: time.March, Date: 4}
		for i, dc := range out.Days {
			if want := first.AddDays(i); dc.Date != want {
				t.Errorf("day %d: expected date %s, got %s", i, want, dc.Date)
			}
		}
		if out.Days[3].Count != 1 {
			t.Errorf("expected 1 completion on March 7, got %d", out.Days[3].Count)
		}
		if out.Days[6].Count != 2 {
			t.Errorf("expected 2 completions today, got %d", out.Days[6].Count)
		}
		if out.Total != 3 {
			t.Errorf("expected weekly total 3, got %d", out.Total)
		}
	})

	t.Run("empty owner still returns the full week", func(t *testing.T) {
		uc, _ := newTestUseCase(repository.Snapshot{Timezone: "UTC"}, now)

		out, err := uc.GetWeekly(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(out.Days))
		}
		for i, dc := range out.Days {
			if dc.Count != 0 {
				t.Errorf("day %d: expected count 0, got %d", i, dc.Count)
			}
		}
		if out.Total != 0 {
			t.Errorf("expected total 0, got %d", out.Total)
		}
	})
}

func TestGetCategories(t *testing.T) {
	ctx := context.Background()
	now := utc(2024, time.March, 10, 12)

	t.Run("counts per category in first-seen order", func(t *testing.T) {
		snapshot := repository.Snapshot{
			Timezone: "UTC",
			Tasks: []model.Task{
				{ID: "t1", Category: model.CategoryStudy, Status: model.StatusCompleted},
				{ID: "t2", Category: model.CategoryWork, Status: model.StatusActive},
				{ID: "t3", Category: model.CategoryStudy, Status: model.StatusActive},
				{ID: "t4", Category: model.CategoryWork, Status: model.StatusCompleted},
				{ID: "t5", Category: model.CategoryWork, Status: model.StatusCompleted},
			},
		}
		uc, _ := newTestUseCase(snapshot, now)

		out, err := uc.GetCategories(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(out.Categories))
		}

		study := out.Categories[0]
		if study.Category != string(model.CategoryStudy) || study.Count != 2 || study.Completed != 1 {
			t.Errorf("unexpected study tally: %+v", study)
		}
		work := out.Categories[1]
		if work.Category != string(model.CategoryWork) || work.Count != 3 || work.Completed != 2 {
			t.Errorf("unexpected work tally: %+v", work)
		}
	})

	t.Run("omits categories with no tasks", func(t *testing.T) {
		uc, _ := newTestUseCase(repository.Snapshot{Timezone: "UTC"}, now)

		out, err := uc.GetCategories(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Categories) != 0 {
			t.Errorf("expected no categories, got %+v", out.Categories)
		}
	})
}

func TestGetHeatmap(t *testing.T) {
	ctx := context.Background()
	now := utc(2024, time.March, 10, 12)

	t.Run("covers the full window with quantized levels", func(t *testing.T) {
		snapshot := repository.Snapshot{
			Timezone: "UTC",
			Events: []model.CompletionEvent{
				event(utc(2024, time.March, 10, 9)),
				event(utc(2024, time.March, 9, 8)),
				event(utc(2024, time.March, 9, 9)),
				event(utc(2024, time.March, 9, 10)),
				event(utc(2024, time.March, 9, 11)),
			},
		}
		uc, _ := newTestUseCase(snapshot, now)

		out, err := uc.GetHeatmap(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Days) != heatmapWindowDays {
			t.Fatalf("expected %d days, got %d", heatmapWindowDays, len(out.Days))
		}

		last := out.Days[len(out.Days)-1]
		if want := (daybucket.Day{Year: 2024, Month: time.March, Date: 10}); last.Date != want {
			t.Fatalf("expected last day %s, got %s", want, last.Date)
		}
		if last.Count != 1 || last.Level != 1 {
			t.Errorf("expected today count=1 level=1, got count=%d level=%d", last.Count, last.Level)
		}

		yesterday := out.Days[len(out.Days)-2]
		if yesterday.Count != 4 || yesterday.Level != 3 {
			t.Errorf("expected yesterday count=4 level=3, got count=%d level=%d", yesterday.Count, yesterday.Level)
		}

		if out.TotalContributions != 5 {
			t.Errorf("expected 5 total contributions, got %d", out.TotalContributions)
		}
		if out.CurrentStreak != 2 {
			t.Errorf("expected current streak 2, got %d", out.CurrentStreak)
		}
		if out.LongestStreak != 2 {
			t.Errorf("expected longest streak 2, got %d", out.LongestStreak)
		}
	})

	t.Run("empty owner yields an all-zero grid", func(t *testing.T) {
		uc, _ := newTestUseCase(repository.Snapshot{Timezone: "UTC"}, now)

		out, err := uc.GetHeatmap(ctx, testScope)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Days) != heatmapWindowDays {
			t.Fatalf("expected %d days, got %d", heatmapWindowDays, len(out.Days))
		}
		for _, d := range out.Days {
			if d.Count != 0 || d.Level != 0 {
				t.Fatalf("expected empty cell on %s, got count=%d level=%d", d.Date, d.Count, d.Level)
			}
		}
		if out.TotalContributions != 0 || out.CurrentStreak != 0 || out.LongestStreak != 0 {
			t.Errorf("expected zero totals, got %+v", out)
		}
	})
}

type invalidatableRepo struct {
	mockSnapshotRepo
	invalidated []string
}

func (m *invalidatableRepo) Invalidate(userID string) {
	m.invalidated = append(m.invalidated, userID)
}

func TestInvalidate(t *testing.T) {
	t.Run("delegates to an invalidatable repository", func(t *testing.T) {
		repo := &invalidatableRepo{}
		uc := New(repo, &mockLogger{})

		uc.Invalidate(testScope.UserID)

		if len(repo.invalidated) != 1 || repo.invalidated[0] != testScope.UserID {
			t.Errorf("expected invalidation for %s, got %v", testScope.UserID, repo.invalidated)
		}
	})

	t.Run("is a no-op on an uncached repository", func(t *testing.T) {
		uc := New(&mockSnapshotRepo{}, &mockLogger{})
		uc.Invalidate(testScope.UserID)
	})
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}
