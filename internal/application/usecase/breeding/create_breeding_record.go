// Package breeding contains breeding-record use cases.
package breeding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// CreateBreedingRecordInput represents the input for breeding record creation.
type CreateBreedingRecordInput struct {
	DoeID      uint
	BuckID     uint
	MatingDate time.Time
	Notes      string
}

// CreateBreedingRecordOutput represents the output of breeding record creation.
type CreateBreedingRecordOutput struct {
	Record *BreedingRecordOutput
}

// CreateBreedingRecordUseCase handles breeding record creation. Both animals
// must exist and match the sex their role requires.
type CreateBreedingRecordUseCase struct {
	breedingRepo adapter.BreedingRepository
	animalRepo   adapter.AnimalRepository
}

// NewCreateBreedingRecordUseCase creates a new CreateBreedingRecordUseCase instance.
func NewCreateBreedingRecordUseCase(breedingRepo adapter.BreedingRepository, animalRepo adapter.AnimalRepository) *CreateBreedingRecordUseCase {
	return &CreateBreedingRecordUseCase{breedingRepo: breedingRepo, animalRepo: animalRepo}
}

// Execute performs the breeding record creation.
func (uc *CreateBreedingRecordUseCase) Execute(ctx context.Context, input CreateBreedingRecordInput) (*CreateBreedingRecordOutput, error) {
	doe, err := uc.findBreedingAnimal(ctx, input.DoeID)
	if err != nil {
		return nil, err
	}
	buck, err := uc.findBreedingAnimal(ctx, input.BuckID)
	if err != nil {
		return nil, err
	}

	if doe.Sex != entity.SexDoe {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotADoe,
			fmt.Sprintf("animal %d is not a doe", input.DoeID),
			domainerror.ErrNotADoe,
		)
	}
	if buck.Sex != entity.SexBuck {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeNotABuck,
			fmt.Sprintf("animal %d is not a buck", input.BuckID),
			domainerror.ErrNotABuck,
		)
	}

	record := entity.NewBreedingRecord(input.DoeID, input.BuckID, input.MatingDate)
	record.Notes = input.Notes

	if err := uc.breedingRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create breeding record: %w", err)
	}

	return &CreateBreedingRecordOutput{Record: toBreedingRecordOutput(record)}, nil
}

func (uc *CreateBreedingRecordUseCase) findBreedingAnimal(ctx context.Context, id uint) (*entity.Animal, error) {
	animal, err := uc.animalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrAnimalNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeBreedingAnimalNotFound,
				fmt.Sprintf("animal %d not found", id),
				domainerror.ErrBreedingAnimalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to look up animal: %w", err)
	}
	return animal, nil
}
