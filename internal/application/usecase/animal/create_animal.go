package animal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// CreateAnimalInput represents the input for animal creation.
type CreateAnimalInput struct {
	TagID             string
	Breed             string
	Sex               string
	BirthDate         *time.Time
	Weight            *float64
	HealthStatus      string
	Notes             string
	Category          string
	AcquisitionDate   *time.Time
	AcquisitionPrice  *decimal.Decimal
	AcquisitionSource string
	MotherID          *uint
	FatherID          *uint
}

// CreateAnimalOutput represents the output of animal creation.
type CreateAnimalOutput struct {
	Animal *AnimalOutput
}

// CreateAnimalUseCase handles animal creation logic.
type CreateAnimalUseCase struct {
	animalRepo adapter.AnimalRepository
}

// NewCreateAnimalUseCase creates a new CreateAnimalUseCase instance.
func NewCreateAnimalUseCase(animalRepo adapter.AnimalRepository) *CreateAnimalUseCase {
	return &CreateAnimalUseCase{animalRepo: animalRepo}
}

// Execute performs the animal creation.
func (uc *CreateAnimalUseCase) Execute(ctx context.Context, input CreateAnimalInput) (*CreateAnimalOutput, error) {
	sex, ok := entity.ParseSex(input.Sex)
	if !ok {
		return nil, domainerror.NewAnimalError(
			domainerror.ErrCodeInvalidSex,
			"sex must be 'Doe' or 'Buck'",
			domainerror.ErrInvalidSex,
		)
	}

	if input.MotherID != nil {
		if err := validateParent(ctx, uc.animalRepo, 0, *input.MotherID); err != nil {
			return nil, err
		}
	}
	if input.FatherID != nil {
		if err := validateParent(ctx, uc.animalRepo, 0, *input.FatherID); err != nil {
			return nil, err
		}
	}

	animal := entity.NewAnimal(input.TagID, input.Breed, sex)
	animal.BirthDate = input.BirthDate
	animal.Weight = input.Weight
	if input.HealthStatus != "" {
		animal.HealthStatus = input.HealthStatus
	}
	animal.Notes = input.Notes
	animal.Category = input.Category
	animal.AcquisitionDate = input.AcquisitionDate
	animal.AcquisitionPrice = input.AcquisitionPrice
	animal.AcquisitionSource = input.AcquisitionSource
	animal.MotherID = input.MotherID
	animal.FatherID = input.FatherID

	if err := uc.animalRepo.Create(ctx, animal); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateTagID) {
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeDuplicateTagID,
				fmt.Sprintf("tag id %q is already in use", input.TagID),
				domainerror.ErrDuplicateTagID,
			)
		}
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}

	return &CreateAnimalOutput{Animal: toAnimalOutput(animal, 0)}, nil
}
