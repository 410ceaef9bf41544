package repository

import (
	"time"

	"smartstudy/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID          string
	Title           string
	Description     string
	Notes           string
	Category        model.Category
	DueDate         time.Time
	EffortHours     float64
	ComplexityLevel int
	RequiresProof   bool
	PriorityScore   float64
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter parameters for listing Tasks. Non-zero
// fields are applied as AND conditions; results are ordered by priority
// score descending.
type ListTasksOptions struct {
	UserID   string
	Status   model.Status
	Category model.Category
	DueFrom  *time.Time
	DueTo    *time.Time
}

// UpdateTaskOptions holds the full post-update field set for a Task.
type UpdateTaskOptions struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Notes           string
	Category        model.Category
	DueDate         time.Time
	EffortHours     float64
	ComplexityLevel int
	RequiresProof   bool
	PriorityScore   float64
	ProofImageURL   string
}

// CompleteTaskOptions holds parameters for the atomic complete+append.
type CompleteTaskOptions struct {
	ID          string
	UserID      string
	Category    model.Category
	CompletedAt time.Time
}

// ListEventsOptions holds filter parameters for completion history.
type ListEventsOptions struct {
	UserID string
	Since  *time.Time
}
