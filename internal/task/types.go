package task

import (
	"time"

	"smartstudy/internal/model"
)

// ListFilter selects which slice of the task set to return.
type ListFilter string

const (
	FilterAll       ListFilter = "all"
	FilterToday     ListFilter = "today"
	FilterUpcoming  ListFilter = "upcoming"
	FilterCompleted ListFilter = "completed"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title           string
	Description     string
	Notes           string
	Category        model.Category
	DueDate         time.Time
	EffortHours     float64
	ComplexityLevel int
	RequiresProof   bool
}

// UpdateTaskInput carries partial task updates; nil fields are left
// untouched. Priority is recomputed whenever due date, effort, or
// complexity changes.
type UpdateTaskInput struct {
	ID              string
	Title           *string
	Description     *string
	Notes           *string
	Category        *model.Category
	DueDate         *time.Time
	EffortHours     *float64
	ComplexityLevel *int
	RequiresProof   *bool
}

type ListTasksInput struct {
	Filter   ListFilter
	Category model.Category
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

type CompleteTaskOutput struct {
	Task model.Task
}

type UploadProofOutput struct {
	ProofImageURL string
}
