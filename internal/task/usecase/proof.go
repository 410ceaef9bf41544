package usecase

import (
	"context"

	"smartstudy/internal/model"
	"smartstudy/internal/task"
	repo "smartstudy/internal/task/repository"
)

// UploadProof stores a proof-of-completion image and attaches its URL to
// the task. The priority score is left as-is; nothing that feeds it
// changed.
func (uc *implUseCase) UploadProof(ctx context.Context, sc model.Scope, id string, data []byte, contentType string) (task.UploadProofOutput, error) {
	existing, err := uc.getOwned(ctx, sc, id, "UploadProof")
	if err != nil {
		return task.UploadProofOutput{}, err
	}

	url, err := uc.uploads.SaveProof(data, contentType)
	if err != nil {
		return task.UploadProofOutput{}, err
	}

	_, err = uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:              existing.ID,
		UserID:          sc.UserID,
		Title:           existing.Title,
		Description:     existing.Description,
		Notes:           existing.Notes,
		Category:        existing.Category,
		DueDate:         existing.DueDate,
		EffortHours:     existing.EffortHours,
		ComplexityLevel: existing.ComplexityLevel,
		RequiresProof:   existing.RequiresProof,
		PriorityScore:   existing.PriorityScore,
		ProofImageURL:   url,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UploadProof UpdateTask: %v", err)
		return task.UploadProofOutput{}, err
	}

	uc.invalidate(sc.UserID)
	return task.UploadProofOutput{ProofImageURL: url}, nil
}
