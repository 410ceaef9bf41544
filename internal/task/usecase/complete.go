package usecase

import (
	"context"

	"smartstudy/internal/model"
	"smartstudy/internal/task"
	repo "smartstudy/internal/task/repository"
)

// Complete toggles a task's status. Completing an active task appends
// exactly one completion event; reopening leaves history untouched, so
// past streaks and heatmap cells survive.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.CompleteTaskOutput, error) {
	existing, err := uc.getOwned(ctx, sc, id, "Complete")
	if err != nil {
		return task.CompleteTaskOutput{}, err
	}

	var updated model.Task
	switch existing.Status {
	case model.StatusCompleted:
		updated, err = uc.repo.ReopenTask(ctx, id, sc.UserID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.Complete ReopenTask: %v", err)
			return task.CompleteTaskOutput{}, err
		}

	default:
		if existing.RequiresProof && !existing.HasProof() {
			return task.CompleteTaskOutput{}, task.ErrProofRequired
		}

		updated, err = uc.repo.CompleteTask(ctx, repo.CompleteTaskOptions{
			ID:          id,
			UserID:      sc.UserID,
			Category:    existing.Category,
			CompletedAt: uc.now(),
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Complete CompleteTask: %v", err)
			return task.CompleteTaskOutput{}, err
		}
	}

	uc.invalidate(sc.UserID)
	return task.CompleteTaskOutput{Task: updated}, nil
}
