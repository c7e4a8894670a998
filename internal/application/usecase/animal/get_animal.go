package animal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// GetAnimalInput represents the input for retrieving one animal.
type GetAnimalInput struct {
	AnimalID uint
}

// TreatmentSummary represents a treatment nested under an animal detail.
type TreatmentSummary struct {
	ID            uint
	TreatmentType string
	Medication    string
	Dosage        string
	TreatmentDate time.Time
	NextDueDate   *time.Time
	Outcome       string
	Cost          *string
	Notes         string
}

// SaleSummary represents the sale nested under an animal detail.
type SaleSummary struct {
	ID            uint
	BuyerName     string
	SaleDate      time.Time
	Price         string
	ReceiptNumber string
	Status        entity.SaleStatus
	Profit        string
}

// GetAnimalOutput represents the output of retrieving one animal.
type GetAnimalOutput struct {
	Animal     *AnimalOutput
	Treatments []TreatmentSummary
	Sale       *SaleSummary
}

// GetAnimalUseCase handles single-animal retrieval.
type GetAnimalUseCase struct {
	animalRepo adapter.AnimalRepository
}

// NewGetAnimalUseCase creates a new GetAnimalUseCase instance.
func NewGetAnimalUseCase(animalRepo adapter.AnimalRepository) *GetAnimalUseCase {
	return &GetAnimalUseCase{animalRepo: animalRepo}
}

// Execute retrieves the animal with its owned records and derived fields.
func (uc *GetAnimalUseCase) Execute(ctx context.Context, input GetAnimalInput) (*GetAnimalOutput, error) {
	related, err := uc.animalRepo.FindByIDWithRelations(ctx, input.AnimalID)
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

	output := &GetAnimalOutput{
		Animal: toAnimalOutput(related.Animal, related.OffspringCount),
	}

	for _, t := range related.Treatments {
		summary := TreatmentSummary{
			ID:            t.ID,
			TreatmentType: t.TreatmentType,
			Medication:    t.Medication,
			Dosage:        t.Dosage,
			TreatmentDate: t.TreatmentDate,
			NextDueDate:   t.NextDueDate,
			Outcome:       t.Outcome,
			Notes:         t.Notes,
		}
		if t.Cost != nil {
			cost := t.Cost.String()
			summary.Cost = &cost
		}
		output.Treatments = append(output.Treatments, summary)
	}

	if related.Sale != nil {
		output.Sale = &SaleSummary{
			ID:            related.Sale.ID,
			BuyerName:     related.Sale.BuyerName,
			SaleDate:      related.Sale.SaleDate,
			Price:         related.Sale.Price.String(),
			ReceiptNumber: related.Sale.ReceiptNumber,
			Status:        related.Sale.Status,
			Profit:        related.Sale.Profit.String(),
		}
	}

	return output, nil
}
