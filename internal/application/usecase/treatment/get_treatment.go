package treatment

import (
	"context"
	"errors"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// GetTreatmentUseCase handles single treatment retrieval.
type GetTreatmentUseCase struct {
	treatmentRepo adapter.TreatmentRepository
}

// NewGetTreatmentUseCase creates a new GetTreatmentUseCase instance.
func NewGetTreatmentUseCase(treatmentRepo adapter.TreatmentRepository) *GetTreatmentUseCase {
	return &GetTreatmentUseCase{treatmentRepo: treatmentRepo}
}

// Execute retrieves one treatment by id.
func (uc *GetTreatmentUseCase) Execute(ctx context.Context, id uint) (*TreatmentOutput, error) {
	treatment, err := uc.treatmentRepo.FindByID(ctx, id)
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

	return toTreatmentOutput(treatment), nil
}
