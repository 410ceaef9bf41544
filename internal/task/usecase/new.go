package usecase

import (
	"time"

	"smartstudy/internal/stats"
	"smartstudy/internal/task/repository"
	"smartstudy/pkg/log"
	"smartstudy/pkg/scoring"
	"smartstudy/pkg/upload"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo        repository.Repository
	scorer      *scoring.Scorer
	uploads     *upload.Storage
	invalidator stats.Invalidator
	l           log.Logger

	// now is swapped out in tests to pin score computation.
	now func() time.Time
}

// New creates a new task UseCase implementation. invalidator may be nil
// when no stats cache is wired.
func New(repo repository.Repository, scorer *scoring.Scorer, uploads *upload.Storage, invalidator stats.Invalidator, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:        repo,
		scorer:      scorer,
		uploads:     uploads,
		invalidator: invalidator,
		l:           l,
		now:         time.Now,
	}
}

// invalidate drops the owner's memoized stats snapshot after a mutation.
func (uc *implUseCase) invalidate(userID string) {
	if uc.invalidator != nil {
		uc.invalidator.Invalidate(userID)
	}
}
