package http

import (
	"time"

	"smartstudy/internal/model"
	"smartstudy/internal/task"
)

// --- Request DTOs ---

type createTaskReq struct {
	Title           string    `json:"title"            binding:"required,min=1,max=200"`
	Description     string    `json:"description"      binding:"omitempty,max=2000"`
	Notes           string    `json:"notes"            binding:"omitempty,max=2000"`
	Category        string    `json:"category"         binding:"omitempty,max=50"`
	DueDate         time.Time `json:"due_date"         binding:"required"`
	EffortHours     float64   `json:"effort_hours"     binding:"required,gt=0,lte=100"`
	ComplexityLevel int       `json:"complexity_level" binding:"required,gte=1,lte=5"`
	RequiresProof   bool      `json:"requires_proof"`
}

func (r createTaskReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:           r.Title,
		Description:     r.Description,
		Notes:           r.Notes,
		Category:        model.ParseCategory(r.Category),
		DueDate:         r.DueDate,
		EffortHours:     r.EffortHours,
		ComplexityLevel: r.ComplexityLevel,
		RequiresProof:   r.RequiresProof,
	}
}

type updateTaskReq struct {
	Title           *string    `json:"title"            binding:"omitempty,min=1,max=200"`
	Description     *string    `json:"description"      binding:"omitempty,max=2000"`
	Notes           *string    `json:"notes"            binding:"omitempty,max=2000"`
	Category        *string    `json:"category"         binding:"omitempty,max=50"`
	DueDate         *time.Time `json:"due_date"`
	EffortHours     *float64   `json:"effort_hours"     binding:"omitempty,gt=0,lte=100"`
	ComplexityLevel *int       `json:"complexity_level" binding:"omitempty,gte=1,lte=5"`
	RequiresProof   *bool      `json:"requires_proof"`
}

func (r updateTaskReq) toInput(id string) task.UpdateTaskInput {
	input := task.UpdateTaskInput{
		ID:              id,
		Title:           r.Title,
		Description:     r.Description,
		Notes:           r.Notes,
		DueDate:         r.DueDate,
		EffortHours:     r.EffortHours,
		ComplexityLevel: r.ComplexityLevel,
		RequiresProof:   r.RequiresProof,
	}
	if r.Category != nil {
		category := model.ParseCategory(*r.Category)
		input.Category = &category
	}
	return input
}

type listTasksReq struct {
	Filter   string `form:"filter"   binding:"omitempty,oneof=all today upcoming completed"`
	Category string `form:"category" binding:"omitempty,max=50"`
}

func (r listTasksReq) toInput() task.ListTasksInput {
	input := task.ListTasksInput{Filter: task.ListFilter(r.Filter)}
	if r.Category != "" {
		input.Category = model.ParseCategory(r.Category)
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	Category        string     `json:"category"`
	DueDate         time.Time  `json:"due_date"`
	EffortHours     float64    `json:"effort_hours"`
	ComplexityLevel int        `json:"complexity_level"`
	RequiresProof   bool       `json:"requires_proof"`
	PriorityScore   float64    `json:"priority_score"`
	Status          string     `json:"status"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ProofImageURL   string     `json:"proof_image_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Notes:           t.Notes,
		Category:        string(t.Category),
		DueDate:         t.DueDate,
		EffortHours:     t.EffortHours,
		ComplexityLevel: t.ComplexityLevel,
		RequiresProof:   t.RequiresProof,
		PriorityScore:   t.PriorityScore,
		Status:          string(t.Status),
		CompletedAt:     t.CompletedAt,
		ProofImageURL:   t.ProofImageURL,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListTasksResp(out task.ListTasksOutput) listTasksResp {
	resp := listTasksResp{
		Tasks: make([]taskResp, len(out.Tasks)),
		Total: out.Total,
	}
	for i, t := range out.Tasks {
		resp.Tasks[i] = newTaskResp(t)
	}
	return resp
}

type uploadProofResp struct {
	ProofImageURL string `json:"proof_image_url"`
}
