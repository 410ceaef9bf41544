package repository

import (
	"context"

	"smartstudy/internal/model"
)

// Snapshot is a consistent read of everything the analytics engine
// needs for one owner: the full task set, the completion history
// window, and the owner's timezone.
type Snapshot struct {
	Tasks    []model.Task
	Events   []model.CompletionEvent
	Timezone string
}

// Repository provides consistent owner snapshots.
type Repository interface {
	// GetSnapshot reads tasks, completion events, and timezone in a
	// single transaction. An unknown owner yields an empty snapshot
	// with timezone "UTC", not an error.
	GetSnapshot(ctx context.Context, userID string) (Snapshot, error)
}
