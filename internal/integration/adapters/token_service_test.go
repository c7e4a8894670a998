package adapters

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	token, err := service.GenerateAccessToken(7, "amina@farm.example", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := service.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Email != "amina@farm.example" {
		t.Errorf("expected email amina@farm.example, got %s", claims.Email)
	}
	if !claims.IsAdmin {
		t.Error("expected is_admin claim to round-trip")
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}
}

func TestTokenService_Rejections(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, err := other.GenerateAccessToken(1, "x@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.ValidateAccessToken(token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken(1, "x@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.ValidateAccessToken(token); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := service.ValidateAccessToken("not-a-token"); !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("expected the hash to differ from the plain text")
	}

	if err := service.VerifyPassword(hash, "s3cret"); err != nil {
		t.Errorf("expected the password to verify: %v", err)
	}
	if err := service.VerifyPassword(hash, "wrong"); err == nil {
		t.Error("expected a wrong password to fail verification")
	}
}
