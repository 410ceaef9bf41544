package repository

import (
	"context"

	"smartstudy/internal/model"
)

// Repository defines all data access methods for the User entity.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	// GetOneUser returns the zero-value User (ID == "") when not found.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
}
