package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"smartstudy/internal/auth"
	repo "smartstudy/internal/auth/repository"
)

// bcrypt rejects passwords longer than 72 bytes; truncate like the
// reference clients do instead of erroring.
const bcryptMaxBytes = 72

// Register creates a new account with a hashed password.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) (auth.RegisterOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return auth.RegisterOutput{}, err
	}
	if existing.ID != "" {
		return auth.RegisterOutput{}, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword(truncatePassword(input.Password), 12)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GenerateFromPassword: %v", err)
		return auth.RegisterOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		// A concurrent register can still hit the unique index.
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return auth.RegisterOutput{}, auth.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return auth.RegisterOutput{}, err
	}

	return auth.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues an access token.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.LoginOutput{}, err
	}
	if user.ID == "" {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), truncatePassword(input.Password)); err != nil {
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Generate(user.ID, user.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login Generate: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{AccessToken: token, User: user}, nil
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > bcryptMaxBytes {
		b = b[:bcryptMaxBytes]
	}
	return b
}
