package treatment

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

// RecordTreatmentInput represents the input for treatment creation. When
// TreatmentType is "Other", CustomType supplies the stored type value.
type RecordTreatmentInput struct {
	AnimalID      uint
	TreatmentType string
	CustomType    string
	Medication    string
	Dosage        string
	TreatmentDate *time.Time
	NextDueDate   *time.Time
	Outcome       string
	Cost          *decimal.Decimal
	Notes         string
}

// RecordTreatmentOutput represents the output of treatment creation.
type RecordTreatmentOutput struct {
	Treatment      *TreatmentOutput
	ExpenseCreated bool
}

// RecordTreatmentUseCase handles treatment creation, including the expense
// derived from a positive treatment cost.
type RecordTreatmentUseCase struct {
	treatmentRepo adapter.TreatmentRepository
	animalRepo    adapter.AnimalRepository
}

// NewRecordTreatmentUseCase creates a new RecordTreatmentUseCase instance.
func NewRecordTreatmentUseCase(treatmentRepo adapter.TreatmentRepository, animalRepo adapter.AnimalRepository) *RecordTreatmentUseCase {
	return &RecordTreatmentUseCase{treatmentRepo: treatmentRepo, animalRepo: animalRepo}
}

// Execute performs the treatment creation.
func (uc *RecordTreatmentUseCase) Execute(ctx context.Context, input RecordTreatmentInput) (*RecordTreatmentOutput, error) {
	treatmentType, err := resolveTreatmentType(input.TreatmentType, input.CustomType)
	if err != nil {
		return nil, err
	}

	if input.Cost != nil && input.Cost.IsNegative() {
		return nil, domainerror.NewTreatmentError(
			domainerror.ErrCodeInvalidTreatmentCost,
			"treatment cost must not be negative",
			domainerror.ErrInvalidTreatmentCost,
		)
	}

	if _, err := uc.animalRepo.FindByID(ctx, input.AnimalID); err != nil {
		if errors.Is(err, domainerror.ErrAnimalNotFound) {
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeAnimalNotFound,
				fmt.Sprintf("animal %d not found", input.AnimalID),
				domainerror.ErrAnimalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to look up animal: %w", err)
	}

	treatment := entity.NewTreatment(input.AnimalID, treatmentType)
	if input.TreatmentDate != nil {
		treatment.TreatmentDate = *input.TreatmentDate
	}
	treatment.Medication = input.Medication
	treatment.Dosage = input.Dosage
	treatment.NextDueDate = input.NextDueDate
	treatment.Outcome = input.Outcome
	treatment.Cost = input.Cost
	treatment.Notes = input.Notes

	derivedExpense := treatment.DerivedExpense()

	if err := uc.treatmentRepo.CreateWithExpense(ctx, treatment, derivedExpense); err != nil {
		return nil, fmt.Errorf("failed to record treatment: %w", err)
	}

	return &RecordTreatmentOutput{
		Treatment:      toTreatmentOutput(treatment),
		ExpenseCreated: derivedExpense != nil,
	}, nil
}
