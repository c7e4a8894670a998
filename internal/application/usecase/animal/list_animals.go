package animal

import (
	"context"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

// ListAnimalsOutput represents the output of listing active animals.
type ListAnimalsOutput struct {
	Animals []*AnimalOutput
}

// ListAnimalsUseCase handles listing of active animals.
type ListAnimalsUseCase struct {
	animalRepo adapter.AnimalRepository
}

// NewListAnimalsUseCase creates a new ListAnimalsUseCase instance.
func NewListAnimalsUseCase(animalRepo adapter.AnimalRepository) *ListAnimalsUseCase {
	return &ListAnimalsUseCase{animalRepo: animalRepo}
}

// Execute lists all animals currently in Active status.
func (uc *ListAnimalsUseCase) Execute(ctx context.Context) (*ListAnimalsOutput, error) {
	animals, err := uc.animalRepo.FindByStatus(ctx, entity.AnimalStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}

	counts, err := uc.animalRepo.OffspringCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count offspring: %w", err)
	}

	output := &ListAnimalsOutput{Animals: make([]*AnimalOutput, 0, len(animals))}
	for _, animal := range animals {
		output.Animals = append(output.Animals, toAnimalOutput(animal, counts[animal.ID]))
	}
	return output, nil
}
