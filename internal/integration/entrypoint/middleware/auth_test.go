package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/application/adapter"
)

type stubTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (s *stubTokenService) GenerateAccessToken(userID uint, email string, isAdmin bool) (string, error) {
	return "stub-token", nil
}

func (s *stubTokenService) ValidateAccessToken(token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func authTestRouter(tokenService adapter.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	m := NewAuthMiddleware(tokenService)
	engine.GET("/protected", m.Authenticate(), func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return engine
}

func TestAuthenticate(t *testing.T) {
	validService := &stubTokenService{
		claims: &adapter.TokenClaims{
			UserID:    42,
			Email:     "maria@farm.test",
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}

	t.Run("allows a valid bearer token and sets the user in context", func(t *testing.T) {
		engine := authTestRouter(validService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d. body: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects a missing authorization header", func(t *testing.T) {
		engine := authTestRouter(validService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects a non-bearer header", func(t *testing.T) {
		engine := authTestRouter(validService)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		engine := authTestRouter(&stubTokenService{err: errors.New("token expired")})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
