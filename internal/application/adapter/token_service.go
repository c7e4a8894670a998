package adapter

import "time"

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID    uint
	Email     string
	IsAdmin   bool
	ExpiresAt time.Time
}

// TokenService defines the contract for bearer token operations.
type TokenService interface {
	// GenerateAccessToken issues a signed access token for the user.
	GenerateAccessToken(userID uint, email string, isAdmin bool) (string, error)

	// ValidateAccessToken verifies a token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
