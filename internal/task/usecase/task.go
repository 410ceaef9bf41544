package usecase

import (
	"context"

	"smartstudy/internal/model"
	"smartstudy/internal/task"
	repo "smartstudy/internal/task/repository"
	"smartstudy/pkg/daybucket"
)

// Create inserts a new active task with its priority computed up front.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	score := uc.scorer.Score(input.DueDate, input.EffortHours, input.ComplexityLevel, uc.now())

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:          sc.UserID,
		Title:           input.Title,
		Description:     input.Description,
		Notes:           input.Notes,
		Category:        input.Category,
		DueDate:         input.DueDate,
		EffortHours:     input.EffortHours,
		ComplexityLevel: input.ComplexityLevel,
		RequiresProof:   input.RequiresProof,
		PriorityScore:   score,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	uc.invalidate(sc.UserID)
	return task.CreateTaskOutput{Task: created}, nil
}

// List returns the owner's tasks under the given filter, ordered by
// priority descending. Today and upcoming are evaluated against the
// owner's local calendar day.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	opt := repo.ListTasksOptions{
		UserID:   sc.UserID,
		Category: input.Category,
	}

	filter := input.Filter
	if filter == "" {
		filter = task.FilterAll
	}

	switch filter {
	case task.FilterAll:
	case task.FilterCompleted:
		opt.Status = model.StatusCompleted
	case task.FilterToday, task.FilterUpcoming:
		timezone, err := uc.repo.UserTimezone(ctx, sc.UserID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List UserTimezone: %v", err)
			return task.ListTasksOutput{}, err
		}
		bucketer := daybucket.NewOrUTC(timezone)
		endOfToday := bucketer.EndOfDay(bucketer.Today(uc.now()))

		opt.Status = model.StatusActive
		if filter == task.FilterToday {
			// Due today or already overdue.
			opt.DueTo = &endOfToday
		} else {
			opt.DueFrom = &endOfToday
		}
	default:
		return task.ListTasksOutput{}, task.ErrInvalidFilter
	}

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}

// Detail fetches a single owned task.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailTaskOutput, error) {
	found, err := uc.getOwned(ctx, sc, id, "Detail")
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{Task: found}, nil
}

// Update applies a partial update, recomputing the priority score from
// the merged field set.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.getOwned(ctx, sc, input.ID, "Update")
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	merged := mergeUpdate(existing, input)
	score := uc.scorer.Score(merged.DueDate, merged.EffortHours, merged.ComplexityLevel, uc.now())

	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              merged.ID,
		UserID:          sc.UserID,
		Title:           merged.Title,
		Description:     merged.Description,
		Notes:           merged.Notes,
		Category:        merged.Category,
		DueDate:         merged.DueDate,
		EffortHours:     merged.EffortHours,
		ComplexityLevel: merged.ComplexityLevel,
		RequiresProof:   merged.RequiresProof,
		PriorityScore:   score,
		ProofImageURL:   merged.ProofImageURL,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}

	uc.invalidate(sc.UserID)
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes an owned task. Completion history is kept so streaks
// and the heatmap do not rewrite the past.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.getOwned(ctx, sc, id, "Delete"); err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id, sc.UserID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}

	uc.invalidate(sc.UserID)
	return nil
}

// getOwned fetches a task scoped to the caller, mapping absence to
// ErrTaskNotFound.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id, method string) (model.Task, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneTask: %v", method, err)
		return model.Task{}, err
	}
	if found.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return found, nil
}

func mergeUpdate(existing model.Task, input task.UpdateTaskInput) model.Task {
	merged := existing
	if input.Title != nil {
		merged.Title = *input.Title
	}
	if input.Description != nil {
		merged.Description = *input.Description
	}
	if input.Notes != nil {
		merged.Notes = *input.Notes
	}
	if input.Category != nil {
		merged.Category = *input.Category
	}
	if input.DueDate != nil {
		merged.DueDate = *input.DueDate
	}
	if input.EffortHours != nil {
		merged.EffortHours = *input.EffortHours
	}
	if input.ComplexityLevel != nil {
		merged.ComplexityLevel = *input.ComplexityLevel
	}
	if input.RequiresProof != nil {
		merged.RequiresProof = *input.RequiresProof
	}
	return merged
}
