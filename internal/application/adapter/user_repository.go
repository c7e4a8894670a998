package adapter

import (
	"context"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// UserRepository defines the contract for user data operations.
type UserRepository interface {
	// Create persists a new user. Duplicate email surfaces as
	// ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
