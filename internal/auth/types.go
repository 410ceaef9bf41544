package auth

import "smartstudy/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries partial profile updates; nil fields are
// left untouched.
type UpdateProfileInput struct {
	Name             *string
	Timezone         *string
	NotificationTime *string // HH:MM
	ReminderOffset   *int    // minutes, 5–120
}

// --- UseCase Outputs ---

type RegisterOutput struct {
	User model.User
}

type LoginOutput struct {
	AccessToken string
	User        model.User
}

type ProfileOutput struct {
	User model.User
}
