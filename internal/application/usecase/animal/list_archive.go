package animal

import (
	"context"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// ListArchiveInput represents the input for listing non-active animals.
// Status optionally narrows the archive to a single status.
type ListArchiveInput struct {
	Status *string
}

// ListArchiveOutput represents the output of the archive listing.
type ListArchiveOutput struct {
	Animals []*AnimalOutput
}

// ListArchiveUseCase lists animals that have left the active herd.
type ListArchiveUseCase struct {
	animalRepo adapter.AnimalRepository
}

// NewListArchiveUseCase creates a new ListArchiveUseCase instance.
func NewListArchiveUseCase(animalRepo adapter.AnimalRepository) *ListArchiveUseCase {
	return &ListArchiveUseCase{animalRepo: animalRepo}
}

// Execute retrieves the archived animals.
func (uc *ListArchiveUseCase) Execute(ctx context.Context, input ListArchiveInput) (*ListArchiveOutput, error) {
	var (
		animals []*entity.Animal
		err     error
	)

	if input.Status != nil && *input.Status != "" {
		status, ok := entity.ParseAnimalStatus(*input.Status)
		if !ok || status == entity.AnimalStatusActive {
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeInvalidAnimalStatus,
				"archive status must be one of Sold, Deceased, Archived",
				domainerror.ErrInvalidAnimalStatus,
			)
		}
		animals, err = uc.animalRepo.FindByStatus(ctx, status)
	} else {
		animals, err = uc.animalRepo.FindNotActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list archived animals: %w", err)
	}

	counts, err := uc.animalRepo.OffspringCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count offspring: %w", err)
	}

	outputs := make([]*AnimalOutput, 0, len(animals))
	for _, a := range animals {
		outputs = append(outputs, toAnimalOutput(a, counts[a.ID]))
	}

	return &ListArchiveOutput{Animals: outputs}, nil
}
