package model

import "time"

// CompletionEvent records a single active→completed transition.
// Created exactly once per completion; reopening a task does not delete
// its events, so history-based metrics survive reopens.
type CompletionEvent struct {
	ID          string
	UserID      string
	TaskID      string
	Category    Category // copied from the task at completion time
	CompletedAt time.Time
}
