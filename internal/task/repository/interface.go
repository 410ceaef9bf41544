package repository

import (
	"context"

	"smartstudy/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	EventRepository

	// UserTimezone returns the stored timezone of a user ("" when the
	// user does not exist). Needed for owner-local due-date filters.
	UserTimezone(ctx context.Context, userID string) (string, error)
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns the zero-value Task (ID == "") when not found.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id, userID string) error

	// CompleteTask atomically flips an active task to completed and
	// appends its completion event; returns the updated task.
	CompleteTask(ctx context.Context, opt CompleteTaskOptions) (model.Task, error)
	// ReopenTask flips a completed task back to active, clearing its
	// completion instant. History events are not touched.
	ReopenTask(ctx context.Context, id, userID string) (model.Task, error)
}

// EventRepository defines data access for completion history.
type EventRepository interface {
	ListCompletionEvents(ctx context.Context, opt ListEventsOptions) ([]model.CompletionEvent, error)
}
