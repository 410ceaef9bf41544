package usecase

import (
	"context"
	"time"

	"smartstudy/internal/auth"
	repo "smartstudy/internal/auth/repository"
	"smartstudy/internal/model"
)

// Me returns the authenticated user's profile.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (auth.ProfileOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Me GetOneUser: %v", err)
		return auth.ProfileOutput{}, err
	}
	if user.ID == "" {
		return auth.ProfileOutput{}, auth.ErrUserNotFound
	}
	return auth.ProfileOutput{User: user}, nil
}

// UpdateProfile applies a partial profile update. The timezone is
// validated against the IANA database before it can reach the analytics
// read paths.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input auth.UpdateProfileInput) (auth.ProfileOutput, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile GetOneUser: %v", err)
		return auth.ProfileOutput{}, err
	}
	if user.ID == "" {
		return auth.ProfileOutput{}, auth.ErrUserNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Timezone != nil {
		if _, err := time.LoadLocation(*input.Timezone); err != nil {
			return auth.ProfileOutput{}, auth.ErrInvalidTimezone
		}
		user.Timezone = *input.Timezone
	}
	if input.NotificationTime != nil {
		user.NotificationTime = *input.NotificationTime
	}
	if input.ReminderOffset != nil {
		user.ReminderOffset = *input.ReminderOffset
	}

	updated, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:               user.ID,
		Name:             user.Name,
		Timezone:         user.Timezone,
		NotificationTime: user.NotificationTime,
		ReminderOffset:   user.ReminderOffset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile UpdateUser: %v", err)
		return auth.ProfileOutput{}, err
	}
	return auth.ProfileOutput{User: updated}, nil
}
