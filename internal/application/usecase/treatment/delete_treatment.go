package treatment

import (
	"context"
	"errors"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// DeleteTreatmentUseCase handles treatment deletion. Any expense derived at
// creation time is left in place; the financial record stands on its own.
type DeleteTreatmentUseCase struct {
	treatmentRepo adapter.TreatmentRepository
}

// NewDeleteTreatmentUseCase creates a new DeleteTreatmentUseCase instance.
func NewDeleteTreatmentUseCase(treatmentRepo adapter.TreatmentRepository) *DeleteTreatmentUseCase {
	return &DeleteTreatmentUseCase{treatmentRepo: treatmentRepo}
}

// Execute deletes one treatment by id.
func (uc *DeleteTreatmentUseCase) Execute(ctx context.Context, id uint) error {
	if _, err := uc.treatmentRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domainerror.ErrTreatmentNotFound) {
			return domainerror.NewTreatmentError(
				domainerror.ErrCodeTreatmentNotFound,
				"treatment not found",
				domainerror.ErrTreatmentNotFound,
			)
		}
		return fmt.Errorf("failed to find treatment: %w", err)
	}

	if err := uc.treatmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete treatment: %w", err)
	}
	return nil
}
