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

// UpdateAnimalInput represents the input for animal update. Only non-nil
// fields change; omitted fields retain their prior value.
type UpdateAnimalInput struct {
	AnimalID          uint
	TagID             *string
	Breed             *string
	Sex               *string
	BirthDate         *time.Time
	Weight            *float64
	HealthStatus      *string
	Notes             *string
	Category          *string
	Status            *string
	AcquisitionDate   *time.Time
	AcquisitionPrice  *decimal.Decimal
	AcquisitionSource *string
	MotherID          *uint
	FatherID          *uint
}

// UpdateAnimalOutput represents the output of animal update.
type UpdateAnimalOutput struct {
	Animal *AnimalOutput
}

// UpdateAnimalUseCase handles animal update logic.
type UpdateAnimalUseCase struct {
	animalRepo adapter.AnimalRepository
}

// NewUpdateAnimalUseCase creates a new UpdateAnimalUseCase instance.
func NewUpdateAnimalUseCase(animalRepo adapter.AnimalRepository) *UpdateAnimalUseCase {
	return &UpdateAnimalUseCase{animalRepo: animalRepo}
}

// Execute performs the animal update with patch semantics.
func (uc *UpdateAnimalUseCase) Execute(ctx context.Context, input UpdateAnimalInput) (*UpdateAnimalOutput, error) {
	animal, err := uc.animalRepo.FindByID(ctx, input.AnimalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAnimalNotFound) {
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeAnimalNotFound,
				"animal not found",
				domainerror.ErrAnimalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find animal: %w", err)
	}

	if input.TagID != nil {
		animal.TagID = *input.TagID
	}
	if input.Breed != nil {
		animal.Breed = *input.Breed
	}
	if input.Sex != nil {
		sex, ok := entity.ParseSex(*input.Sex)
		if !ok {
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeInvalidSex,
				"sex must be 'Doe' or 'Buck'",
				domainerror.ErrInvalidSex,
			)
		}
		animal.Sex = sex
	}
	if input.BirthDate != nil {
		animal.BirthDate = input.BirthDate
	}
	if input.Weight != nil {
		animal.Weight = input.Weight
	}
	if input.HealthStatus != nil {
		animal.HealthStatus = *input.HealthStatus
	}
	if input.Notes != nil {
		animal.Notes = *input.Notes
	}
	if input.Category != nil {
		animal.Category = *input.Category
	}
	if input.Status != nil {
		status, ok := entity.ParseAnimalStatus(*input.Status)
		if !ok {
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeInvalidAnimalStatus,
				"status must be one of Active, Sold, Deceased, Archived",
				domainerror.ErrInvalidAnimalStatus,
			)
		}
		animal.Status = status
	}
	if input.AcquisitionDate != nil {
		animal.AcquisitionDate = input.AcquisitionDate
	}
	if input.AcquisitionPrice != nil {
		animal.AcquisitionPrice = input.AcquisitionPrice
	}
	if input.AcquisitionSource != nil {
		animal.AcquisitionSource = *input.AcquisitionSource
	}

	if input.MotherID != nil {
		if err := validateParent(ctx, uc.animalRepo, animal.ID, *input.MotherID); err != nil {
			return nil, err
		}
		animal.MotherID = input.MotherID
	}
	if input.FatherID != nil {
		if err := validateParent(ctx, uc.animalRepo, animal.ID, *input.FatherID); err != nil {
			return nil, err
		}
		animal.FatherID = input.FatherID
	}

	animal.UpdatedAt = time.Now().UTC()

	if err := uc.animalRepo.Update(ctx, animal); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateTagID) {
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeDuplicateTagID,
				fmt.Sprintf("tag id %q is already in use", animal.TagID),
				domainerror.ErrDuplicateTagID,
			)
		}
		return nil, fmt.Errorf("failed to update animal: %w", err)
	}

	offspring, err := uc.animalRepo.CountOffspring(ctx, animal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count offspring: %w", err)
	}

	return &UpdateAnimalOutput{Animal: toAnimalOutput(animal, offspring)}, nil
}
