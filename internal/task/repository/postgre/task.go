package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartstudy/internal/model"
	repo "smartstudy/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, notes, category, due_date,
	effort_hours, complexity_level, requires_proof, priority_score, status,
	completed_at, proof_image_url, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, collapsing stored categories onto the
// closed enum and normalizing nullable columns.
func scanTask(row rowScanner) (model.Task, error) {
	var (
		t           model.Task
		category    string
		status      string
		completedAt sql.NullTime
		proofURL    sql.NullString
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Notes, &category, &t.DueDate,
		&t.EffortHours, &t.ComplexityLevel, &t.RequiresProof, &t.PriorityScore, &status,
		&completedAt, &proofURL, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Category = model.ParseCategory(category)
	t.Status = model.Status(status)
	if completedAt.Valid {
		at := completedAt.Time
		t.CompletedAt = &at
	}
	t.ProofImageURL = proofURL.String
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, title, description, notes, category, due_date,
			effort_hours, complexity_level, requires_proof, priority_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description, opt.Notes,
		string(opt.Category), opt.DueDate, opt.EffortHours, opt.ComplexityLevel,
		opt.RequiresProof, opt.PriorityScore,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task scoped to its owner.
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = $1 AND user_id = $2 LIMIT 1`, taskColumns)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns the owner's tasks matching the filters, ordered by
// priority score descending.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	conds := []string{"user_id = $1"}
	args := []any{opt.UserID}

	if opt.Status != "" {
		args = append(args, string(opt.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if opt.Category != "" {
		args = append(args, string(opt.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if opt.DueFrom != nil {
		args = append(args, *opt.DueFrom)
		conds = append(conds, fmt.Sprintf("due_date >= $%d", len(args)))
	}
	if opt.DueTo != nil {
		args = append(args, *opt.DueTo)
		conds = append(conds, fmt.Sprintf("due_date < $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY priority_score DESC, created_at DESC`,
		taskColumns, strings.Join(conds, " AND "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask writes the full post-update field set in one statement.
// Postgres row-level locking serializes concurrent updates to the same
// task, so the derived priority score is never written interleaved.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = $1, description = $2, notes = $3, category = $4, due_date = $5,
			effort_hours = $6, complexity_level = $7, requires_proof = $8,
			priority_score = $9, proof_image_url = NULLIF($10, ''), updated_at = $11
		WHERE id = $12 AND user_id = $13
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, opt.Notes, string(opt.Category), opt.DueDate,
		opt.EffortHours, opt.ComplexityLevel, opt.RequiresProof,
		opt.PriorityScore, opt.ProofImageURL, time.Now(), opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task scoped to its owner. Completion history is
// kept: events reference the task id but live in their own table.
func (r *implRepository) DeleteTask(ctx context.Context, id, userID string) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// UserTimezone returns the stored timezone of a user.
func (r *implRepository) UserTimezone(ctx context.Context, userID string) (string, error) {
	const query = `SELECT timezone FROM users WHERE id = $1`

	var timezone string
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&timezone)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UserTimezone"), err)
		return "", repo.ErrFailedToGet
	}
	return timezone, nil
}
