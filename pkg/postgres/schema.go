package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied at startup; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                TEXT PRIMARY KEY,
		name              VARCHAR(100) NOT NULL,
		email             VARCHAR(255) NOT NULL UNIQUE,
		password_hash     VARCHAR(255) NOT NULL,
		timezone          VARCHAR(50)  NOT NULL DEFAULT 'UTC',
		notification_time VARCHAR(5)   NOT NULL DEFAULT '20:00',
		reminder_offset   INT          NOT NULL DEFAULT 30,
		created_at        TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title            VARCHAR(200) NOT NULL,
		description      TEXT NOT NULL DEFAULT '',
		notes            TEXT NOT NULL DEFAULT '',
		category         VARCHAR(50)  NOT NULL DEFAULT 'general',
		due_date         TIMESTAMPTZ  NOT NULL,
		effort_hours     DOUBLE PRECISION NOT NULL,
		complexity_level INT NOT NULL,
		requires_proof   BOOLEAN NOT NULL DEFAULT FALSE,
		priority_score   DOUBLE PRECISION NOT NULL DEFAULT 0,
		status           VARCHAR(20) NOT NULL DEFAULT 'active',
		completed_at     TIMESTAMPTZ,
		proof_image_url  VARCHAR(500),
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id, status)`,
	`CREATE TABLE IF NOT EXISTS completion_events (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		task_id      TEXT NOT NULL,
		category     VARCHAR(50) NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completion_events_user_time
		ON completion_events(user_id, completed_at)`,
}

// EnsureSchema creates the tables the service needs if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
