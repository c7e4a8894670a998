// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// AnimalRepository defines the contract for animal data operations.
type AnimalRepository interface {
	// Create persists a new animal and assigns its id.
	Create(ctx context.Context, animal *entity.Animal) error

	// FindByID retrieves an animal regardless of status.
	FindByID(ctx context.Context, id uint) (*entity.Animal, error)

	// FindByIDWithRelations retrieves an animal together with its treatments,
	// sale and derived offspring count.
	FindByIDWithRelations(ctx context.Context, id uint) (*entity.AnimalWithRelations, error)

	// FindByStatus retrieves all animals in the given status, newest first.
	FindByStatus(ctx context.Context, status entity.AnimalStatus) ([]*entity.Animal, error)

	// FindNotActive retrieves all animals outside the Active status.
	FindNotActive(ctx context.Context) ([]*entity.Animal, error)

	// FindAll retrieves every animal regardless of status.
	FindAll(ctx context.Context) ([]*entity.Animal, error)

	// Update persists changes to an existing animal.
	Update(ctx context.Context, animal *entity.Animal) error

	// CountOffspring counts animals that name the given animal as a parent.
	CountOffspring(ctx context.Context, id uint) (int64, error)

	// OffspringCounts counts offspring for every parent in one grouped query,
	// keyed by parent id. Parents without offspring are absent from the map.
	OffspringCounts(ctx context.Context) (map[uint]int64, error)
}
