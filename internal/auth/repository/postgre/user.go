package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"smartstudy/internal/auth/repository"
	"smartstudy/internal/model"
)

const userColumns = `id, name, email, password_hash, timezone, notification_time, reminder_offset, created_at`

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash, timezone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	timezone := opt.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	var user model.User
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), opt.Name, opt.Email, opt.PasswordHash, timezone).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Timezone, &user.NotificationTime, &user.ReminderOffset, &user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.User{}, repository.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repository.ErrFailedToInsert
	}
	return user, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	var (
		conds []string
		args  []any
	)
	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conds) == 0 {
		return model.User{}, repository.ErrFailedToGet
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s LIMIT 1`,
		userColumns, strings.Join(conds, " AND "))

	var user model.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Timezone, &user.NotificationTime, &user.ReminderOffset, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repository.ErrFailedToGet
	}
	return user, nil
}

// UpdateUser updates a User's profile fields and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (model.User, error) {
	const query = `
		UPDATE users
		SET name = $1, timezone = $2, notification_time = $3, reminder_offset = $4
		WHERE id = $5
		RETURNING ` + userColumns

	var user model.User
	err := r.db.QueryRowContext(ctx, query,
		opt.Name, opt.Timezone, opt.NotificationTime, opt.ReminderOffset, opt.ID,
	).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Timezone, &user.NotificationTime, &user.ReminderOffset, &user.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repository.ErrFailedToUpdate
	}
	return user, nil
}
