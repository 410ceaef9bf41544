package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"smartstudy/internal/model"
	repo "smartstudy/internal/task/repository"
)

// CompleteTask flips an active task to completed and appends its
// completion event in one transaction. The SELECT ... FOR UPDATE makes
// concurrent complete/reopen calls on the same task queue up instead of
// double-writing events.
func (r *implRepository) CompleteTask(ctx context.Context, opt repo.CompleteTaskOptions) (model.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	var status string
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM tasks WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		opt.ID, opt.UserID,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s lock: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	task, err := scanTask(tx.QueryRowContext(ctx, `
		UPDATE tasks SET status = 'completed', completed_at = $1, updated_at = $1
		WHERE id = $2 AND user_id = $3
		RETURNING `+taskColumns,
		opt.CompletedAt, opt.ID, opt.UserID,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s update: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	// The event is appended only on a real active→completed transition.
	if model.Status(status) == model.StatusActive {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO completion_events (id, user_id, task_id, category, completed_at)
			VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), opt.UserID, opt.ID, string(opt.Category), opt.CompletedAt,
		)
		if err != nil {
			r.l.Errorf(ctx, "%s event: %v", r.dsn("CompleteTask"), err)
			return model.Task{}, repo.ErrFailedToInsert
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CompleteTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// ReopenTask flips a completed task back to active. The completion
// events are deliberately left in place for historical metrics.
func (r *implRepository) ReopenTask(ctx context.Context, id, userID string) (model.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx, `
		UPDATE tasks SET status = 'active', completed_at = NULL, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+taskColumns,
		id, userID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ReopenTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// ListCompletionEvents returns the owner's completion history, newest
// last, optionally bounded by a cutoff instant.
func (r *implRepository) ListCompletionEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.CompletionEvent, error) {
	query := `SELECT id, user_id, task_id, category, completed_at
		FROM completion_events WHERE user_id = $1`
	args := []any{opt.UserID}

	if opt.Since != nil {
		args = append(args, *opt.Since)
		query += ` AND completed_at >= $2`
	}
	query += ` ORDER BY completed_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCompletionEvents"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var events []model.CompletionEvent
	for rows.Next() {
		var (
			ev       model.CompletionEvent
			category string
		)
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.TaskID, &category, &ev.CompletedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCompletionEvents"), err)
			return nil, repo.ErrFailedToList
		}
		ev.Category = model.ParseCategory(category)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return events, nil
}
