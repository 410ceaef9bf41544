package model

import "time"

// Category classifies what area of life a task belongs to.
type Category string

const (
	CategoryStudy    Category = "study"
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryGeneral  Category = "general"
	CategoryOther    Category = "other"
)

// ParseCategory maps a stored string onto the closed category set.
// Unrecognized values collapse to CategoryOther rather than leaking
// free-form strings into the analytics.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryStudy, CategoryWork, CategoryPersonal, CategoryHealth, CategoryGeneral, CategoryOther:
		return Category(s)
	case "":
		return CategoryGeneral
	default:
		return CategoryOther
	}
}

// Status is the task lifecycle state. The only transitions are
// active → completed (complete) and completed → active (reopen).
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Task is a study/work task with an auto-calculated priority score.
type Task struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	Notes           string
	Category        Category
	DueDate         time.Time
	EffortHours     float64
	ComplexityLevel int // 1–5
	RequiresProof   bool
	PriorityScore   float64 // derived, always in [0,1]
	Status          Status
	CompletedAt     *time.Time
	ProofImageURL   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasProof reports whether a proof-of-completion image is attached.
func (t Task) HasProof() bool {
	return t.ProofImageURL != ""
}
