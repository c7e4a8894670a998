package treatment

import (
	"context"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

// ListTreatmentsInput represents the input for treatment listing. AnimalID
// optionally narrows the list to a single animal.
type ListTreatmentsInput struct {
	AnimalID *uint
}

// ListTreatmentsOutput represents the output of treatment listing.
type ListTreatmentsOutput struct {
	Treatments []*TreatmentOutput
}

// ListTreatmentsUseCase handles treatment listing logic.
type ListTreatmentsUseCase struct {
	treatmentRepo adapter.TreatmentRepository
}

// NewListTreatmentsUseCase creates a new ListTreatmentsUseCase instance.
func NewListTreatmentsUseCase(treatmentRepo adapter.TreatmentRepository) *ListTreatmentsUseCase {
	return &ListTreatmentsUseCase{treatmentRepo: treatmentRepo}
}

// Execute retrieves treatments, newest first.
func (uc *ListTreatmentsUseCase) Execute(ctx context.Context, input ListTreatmentsInput) (*ListTreatmentsOutput, error) {
	var (
		treatments []*entity.Treatment
		err        error
	)
	if input.AnimalID != nil {
		treatments, err = uc.treatmentRepo.FindByAnimal(ctx, *input.AnimalID)
	} else {
		treatments, err = uc.treatmentRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}

	return &ListTreatmentsOutput{Treatments: toTreatmentOutputs(treatments)}, nil
}
