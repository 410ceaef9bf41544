package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateVerify(t *testing.T) {
	m := New("test-secret", time.Hour)

	token, err := m.Generate("user-1", "a@b.com")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "a@b.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestVerifyRejects(t *testing.T) {
	m := New("test-secret", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _ := New("other-secret", time.Hour).Generate("user-1", "a@b.com")
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, _ := New("test-secret", -time.Minute).Generate("user-1", "a@b.com")
		if _, err := m.Verify(token); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})
}
