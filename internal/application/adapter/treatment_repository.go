package adapter

import (
	"context"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// TreatmentRepository defines the contract for treatment data operations.
type TreatmentRepository interface {
	// CreateWithExpense persists a treatment and, when derivedExpense is
	// non-nil, its derived expense inside one transaction. Neither row may
	// exist without the other.
	CreateWithExpense(ctx context.Context, treatment *entity.Treatment, derivedExpense *entity.Expense) error

	// FindByID retrieves a treatment by its id.
	FindByID(ctx context.Context, id uint) (*entity.Treatment, error)

	// FindAll retrieves all treatments, newest treatment date first.
	FindAll(ctx context.Context) ([]*entity.Treatment, error)

	// FindByAnimal retrieves all treatments for one animal.
	FindByAnimal(ctx context.Context, animalID uint) ([]*entity.Treatment, error)

	// Update persists changes to an existing treatment.
	Update(ctx context.Context, treatment *entity.Treatment) error

	// Delete removes a treatment.
	Delete(ctx context.Context, id uint) error
}
