package adapter

import (
	"context"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// BreedingRepository defines the contract for breeding record data operations.
type BreedingRepository interface {
	// Create persists a new breeding record.
	Create(ctx context.Context, record *entity.BreedingRecord) error

	// FindAll retrieves all breeding records, newest mating date first.
	FindAll(ctx context.Context) ([]*entity.BreedingRecord, error)
}
