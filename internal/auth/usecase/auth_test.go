package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartstudy/internal/auth"
	repo "smartstudy/internal/auth/repository"
	"smartstudy/internal/model"
	"smartstudy/pkg/jwt"
)

var testJWT = jwt.New("test-secret", time.Hour)

func TestRegister(t *testing.T) {
	t.Run("duplicate email rejected", func(t *testing.T) {
		r := &mockUserRepo{
			getFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
				return model.User{ID: "existing", Email: opt.Email}, nil
			},
		}
		uc := New(r, testJWT, &mockLogger{})

		_, err := uc.Register(context.Background(), auth.RegisterInput{Email: "a@b.com", Password: "secret1"})
		if !errors.Is(err, auth.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("stores a bcrypt hash, not the password", func(t *testing.T) {
		var stored repo.CreateUserOptions
		r := &mockUserRepo{
			createFunc: func(opt repo.CreateUserOptions) (model.User, error) {
				stored = opt
				return model.User{ID: "u1", Name: opt.Name, Email: opt.Email}, nil
			},
		}
		uc := New(r, testJWT, &mockLogger{})

		out, err := uc.Register(context.Background(), auth.RegisterInput{
			Name: "Alice", Email: "a@b.com", Password: "secret1",
		})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}
		if out.User.ID != "u1" {
			t.Errorf("unexpected user: %+v", out.User)
		}
		if stored.PasswordHash == "secret1" || stored.PasswordHash == "" {
			t.Errorf("password not hashed: %q", stored.PasswordHash)
		}
		if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")) != nil {
			t.Error("stored hash does not verify the original password")
		}
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	userRepo := &mockUserRepo{
		getFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
			if opt.Email == "a@b.com" {
				return model.User{ID: "u1", Email: "a@b.com", PasswordHash: string(hash)}, nil
			}
			return model.User{}, nil
		},
	}
	uc := New(userRepo, testJWT, &mockLogger{})

	t.Run("unknown email", func(t *testing.T) {
		_, err := uc.Login(context.Background(), auth.LoginInput{Email: "x@y.com", Password: "secret1"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.com", Password: "nope"})
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues verifiable token", func(t *testing.T) {
		out, err := uc.Login(context.Background(), auth.LoginInput{Email: "a@b.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		claims, err := testJWT.Verify(out.AccessToken)
		if err != nil {
			t.Fatalf("token does not verify: %v", err)
		}
		if claims.UserID != "u1" {
			t.Errorf("token uid = %q, want u1", claims.UserID)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	existing := model.User{ID: "u1", Name: "Alice", Timezone: "UTC", NotificationTime: "20:00", ReminderOffset: 30}
	r := &mockUserRepo{
		getFunc: func(opt repo.GetOneUserOptions) (model.User, error) {
			return existing, nil
		},
		updateFunc: func(opt repo.UpdateUserOptions) (model.User, error) {
			return model.User{
				ID: opt.ID, Name: opt.Name, Timezone: opt.Timezone,
				NotificationTime: opt.NotificationTime, ReminderOffset: opt.ReminderOffset,
			}, nil
		},
	}
	uc := New(r, testJWT, &mockLogger{})
	sc := model.Scope{UserID: "u1"}

	t.Run("rejects unknown timezone", func(t *testing.T) {
		tz := "Mars/Olympus_Mons"
		_, err := uc.UpdateProfile(context.Background(), sc, auth.UpdateProfileInput{Timezone: &tz})
		if !errors.Is(err, auth.ErrInvalidTimezone) {
			t.Errorf("expected ErrInvalidTimezone, got %v", err)
		}
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		tz := "Asia/Ho_Chi_Minh"
		out, err := uc.UpdateProfile(context.Background(), sc, auth.UpdateProfileInput{Timezone: &tz})
		if err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		if out.User.Timezone != tz {
			t.Errorf("timezone = %q, want %q", out.User.Timezone, tz)
		}
		if out.User.Name != "Alice" || out.User.ReminderOffset != 30 {
			t.Errorf("untouched fields changed: %+v", out.User)
		}
	})
}
