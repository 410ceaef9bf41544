package http

import (
	"time"

	"smartstudy/internal/auth"
	"smartstudy/internal/model"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,min=1,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r registerReq) toInput() auth.RegisterInput {
	return auth.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type updateMeReq struct {
	Name             *string `json:"name"              binding:"omitempty,min=1,max=100"`
	Timezone         *string `json:"timezone"          binding:"omitempty,max=50"`
	NotificationTime *string `json:"notification_time" binding:"omitempty,len=5"`
	ReminderOffset   *int    `json:"reminder_offset"   binding:"omitempty,gte=5,lte=120"`
}

func (r updateMeReq) toInput() auth.UpdateProfileInput {
	return auth.UpdateProfileInput{
		Name:             r.Name,
		Timezone:         r.Timezone,
		NotificationTime: r.NotificationTime,
		ReminderOffset:   r.ReminderOffset,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Timezone         string    `json:"timezone"`
	NotificationTime string    `json:"notification_time"`
	ReminderOffset   int       `json:"reminder_offset"`
	CreatedAt        time.Time `json:"created_at"`
}

func newUserResp(user model.User) userResp {
	return userResp{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Timezone:         user.Timezone,
		NotificationTime: user.NotificationTime,
		ReminderOffset:   user.ReminderOffset,
		CreatedAt:        user.CreatedAt,
	}
}

type registerResp struct {
	User userResp `json:"user"`
}

func (h *handler) newRegisterResp(out auth.RegisterOutput) registerResp {
	return registerResp{User: newUserResp(out.User)}
}

type loginResp struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userResp `json:"user"`
}

func (h *handler) newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		AccessToken: out.AccessToken,
		TokenType:   "bearer",
		User:        newUserResp(out.User),
	}
}

type profileResp struct {
	User userResp `json:"user"`
}

func (h *handler) newProfileResp(out auth.ProfileOutput) profileResp {
	return profileResp{User: newUserResp(out.User)}
}
