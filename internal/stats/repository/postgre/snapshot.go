package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"smartstudy/internal/model"
	repo "smartstudy/internal/stats/repository"
	"smartstudy/pkg/log"
)

// historyWindowDays bounds the completion history read. One day beyond
// the 365-day heatmap window so local-day edges near the cutoff are
// always covered regardless of the owner's offset from UTC.
const historyWindowDays = 366

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed snapshot Repository.
func New(db *sql.DB, l log.Logger) repo.Repository {
	if db == nil {
		panic("stats/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("stats/repository/postgre.%s", method)
}

// GetSnapshot reads the owner's timezone, task set, and completion
// history inside one read-only transaction, so every metric derived
// from the snapshot agrees on the same underlying data.
func (r *implRepository) GetSnapshot(ctx context.Context, userID string) (repo.Snapshot, error) {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("GetSnapshot"), err)
		return repo.Snapshot{}, repo.ErrFailedToSnapshot
	}
	defer tx.Rollback()

	snapshot := repo.Snapshot{Timezone: "UTC"}

	var timezone string
	err = tx.QueryRowContext(ctx, `SELECT timezone FROM users WHERE id = $1`, userID).Scan(&timezone)
	if err != nil && err != sql.ErrNoRows {
		r.l.Errorf(ctx, "%s timezone: %v", r.dsn("GetSnapshot"), err)
		return repo.Snapshot{}, repo.ErrFailedToSnapshot
	}
	if timezone != "" {
		snapshot.Timezone = timezone
	}

	if snapshot.Tasks, err = r.readTasks(ctx, tx, userID); err != nil {
		return repo.Snapshot{}, repo.ErrFailedToSnapshot
	}
	if snapshot.Events, err = r.readEvents(ctx, tx, userID); err != nil {
		return repo.Snapshot{}, repo.ErrFailedToSnapshot
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("GetSnapshot"), err)
		return repo.Snapshot{}, repo.ErrFailedToSnapshot
	}
	return snapshot, nil
}

func (r *implRepository) readTasks(ctx context.Context, tx *sql.Tx, userID string) ([]model.Task, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, user_id, title, category, due_date, effort_hours, complexity_level,
			requires_proof, priority_score, status, completed_at
		FROM tasks WHERE user_id = $1`, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s tasks: %v", r.dsn("GetSnapshot"), err)
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var (
			t           model.Task
			category    string
			status      string
			completedAt sql.NullTime
		)
		err := rows.Scan(&t.ID, &t.UserID, &t.Title, &category, &t.DueDate, &t.EffortHours,
			&t.ComplexityLevel, &t.RequiresProof, &t.PriorityScore, &status, &completedAt)
		if err != nil {
			r.l.Errorf(ctx, "%s task scan: %v", r.dsn("GetSnapshot"), err)
			return nil, err
		}
		t.Category = model.ParseCategory(category)
		t.Status = model.Status(status)
		if completedAt.Valid {
			at := completedAt.Time
			t.CompletedAt = &at
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *implRepository) readEvents(ctx context.Context, tx *sql.Tx, userID string) ([]model.CompletionEvent, error) {
	cutoff := time.Now().AddDate(0, 0, -historyWindowDays)

	rows, err := tx.QueryContext(ctx, `
		SELECT id, user_id, task_id, category, completed_at
		FROM completion_events
		WHERE user_id = $1 AND completed_at >= $2
		ORDER BY completed_at`, userID, cutoff)
	if err != nil {
		r.l.Errorf(ctx, "%s events: %v", r.dsn("GetSnapshot"), err)
		return nil, err
	}
	defer rows.Close()

	var events []model.CompletionEvent
	for rows.Next() {
		var (
			ev       model.CompletionEvent
			category string
		)
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.TaskID, &category, &ev.CompletedAt); err != nil {
			r.l.Errorf(ctx, "%s event scan: %v", r.dsn("GetSnapshot"), err)
			return nil, err
		}
		ev.Category = model.ParseCategory(category)
		events = append(events, ev)
	}
	return events, rows.Err()
}
