package usecase

import (
	"time"

	"smartstudy/internal/stats/repository"
	"smartstudy/pkg/log"
	"smartstudy/pkg/streaks"
)

// heatmapWindowDays is the length of the activity heatmap.
const heatmapWindowDays = 365

// implUseCase is the private implementation of stats.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	thresholds streaks.Thresholds

	// now is swapped out in tests to pin "today".
	now func() time.Time
}

// New creates a new stats UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		thresholds: streaks.DefaultThresholds(),
		now:        time.Now,
	}
}

// Invalidate drops any memoized snapshot for a user. No-op when the
// repository is uncached.
func (uc *implUseCase) Invalidate(userID string) {
	if inv, ok := uc.repo.(interface{ Invalidate(string) }); ok {
		inv.Invalidate(userID)
	}
}
