package treatment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// UpdateTreatmentInput represents the input for treatment update. Only
// non-nil fields change. Updating the cost does not create or adjust any
// expense; derived expenses are written only at treatment creation.
type UpdateTreatmentInput struct {
	TreatmentID   uint
	TreatmentType *string
	CustomType    string
	Medication    *string
	Dosage        *string
	TreatmentDate *time.Time
	NextDueDate   *time.Time
	Outcome       *string
	Cost          *decimal.Decimal
	Notes         *string
}

// UpdateTreatmentOutput represents the output of treatment update.
type UpdateTreatmentOutput struct {
	Treatment *TreatmentOutput
}

// UpdateTreatmentUseCase handles treatment update logic.
type UpdateTreatmentUseCase struct {
	treatmentRepo adapter.TreatmentRepository
}

// NewUpdateTreatmentUseCase creates a new UpdateTreatmentUseCase instance.
func NewUpdateTreatmentUseCase(treatmentRepo adapter.TreatmentRepository) *UpdateTreatmentUseCase {
	return &UpdateTreatmentUseCase{treatmentRepo: treatmentRepo}
}

// Execute performs the treatment update.
func (uc *UpdateTreatmentUseCase) Execute(ctx context.Context, input UpdateTreatmentInput) (*UpdateTreatmentOutput, error) {
	treatment, err := uc.treatmentRepo.FindByID(ctx, input.TreatmentID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTreatmentNotFound) {
			return nil, domainerror.NewTreatmentError(
				domainerror.ErrCodeTreatmentNotFound,
				"treatment not found",
				domainerror.ErrTreatmentNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find treatment: %w", err)
	}

	if input.TreatmentType != nil {
		treatmentType, err := resolveTreatmentType(*input.TreatmentType, input.CustomType)
		if err != nil {
			return nil, err
		}
		treatment.TreatmentType = treatmentType
	}
	if input.Medication != nil {
		treatment.Medication = *input.Medication
	}
	if input.Dosage != nil {
		treatment.Dosage = *input.Dosage
	}
	if input.TreatmentDate != nil {
		treatment.TreatmentDate = *input.TreatmentDate
	}
	if input.NextDueDate != nil {
		treatment.NextDueDate = input.NextDueDate
	}
	if input.Outcome != nil {
		treatment.Outcome = *input.Outcome
	}
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return nil, domainerror.NewTreatmentError(
				domainerror.ErrCodeInvalidTreatmentCost,
				"treatment cost must not be negative",
				domainerror.ErrInvalidTreatmentCost,
			)
		}
		treatment.Cost = input.Cost
	}
	if input.Notes != nil {
		treatment.Notes = *input.Notes
	}

	treatment.UpdatedAt = time.Now().UTC()

	if err := uc.treatmentRepo.Update(ctx, treatment); err != nil {
		return nil, fmt.Errorf("failed to update treatment: %w", err)
	}

	return &UpdateTreatmentOutput{Treatment: toTreatmentOutput(treatment)}, nil
}
