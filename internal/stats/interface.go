package stats

import (
	"context"

	"smartstudy/internal/model"
)

// UseCase computes derived productivity metrics. Every call takes a
// single consistent snapshot of the owner's tasks and completion
// history, so metrics within one response never straddle a concurrent
// mutation.
type UseCase interface {
	GetSummary(ctx context.Context, sc model.Scope) (SummaryOutput, error)
	GetWeekly(ctx context.Context, sc model.Scope) (WeeklyOutput, error)
	GetCategories(ctx context.Context, sc model.Scope) (CategoriesOutput, error)
	GetHeatmap(ctx context.Context, sc model.Scope) (HeatmapOutput, error)
}

// Invalidator drops any memoized snapshot for a user. The task domain
// calls it after every mutation so stale metrics never outlive a write.
type Invalidator interface {
	Invalidate(userID string)
}
