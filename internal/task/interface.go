package task

import (
	"context"

	"smartstudy/internal/model"
)

type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, sc model.Scope, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateTaskInput) (UpdateTaskOutput, error)
	// Complete toggles the task's status: active tasks are completed
	// (appending a completion event), completed tasks are reopened.
	Complete(ctx context.Context, sc model.Scope, id string) (CompleteTaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	UploadProof(ctx context.Context, sc model.Scope, id string, data []byte, contentType string) (UploadProofOutput, error)
}
