package auth

import (
	"context"

	"smartstudy/internal/model"
)

type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Me(ctx context.Context, sc model.Scope) (ProfileOutput, error)
	UpdateProfile(ctx context.Context, sc model.Scope, input UpdateProfileInput) (ProfileOutput, error)
}
