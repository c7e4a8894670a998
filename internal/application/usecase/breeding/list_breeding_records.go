package breeding

import (
	"context"
	"fmt"
	"time"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
)

// BreedingRecordOutput represents a breeding record in use case outputs.
type BreedingRecordOutput struct {
	ID                  uint
	DoeID               uint
	BuckID              uint
	MatingDate          time.Time
	ExpectedKiddingDate time.Time
	Status              string
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func toBreedingRecordOutput(r *entity.BreedingRecord) *BreedingRecordOutput {
	return &BreedingRecordOutput{
		ID:                  r.ID,
		DoeID:               r.DoeID,
		BuckID:              r.BuckID,
		MatingDate:          r.MatingDate,
		ExpectedKiddingDate: r.ExpectedKiddingDate,
		Status:              r.Status,
		Notes:               r.Notes,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ListBreedingRecordsUseCase handles breeding record listing.
type ListBreedingRecordsUseCase struct {
	breedingRepo adapter.BreedingRepository
}

// NewListBreedingRecordsUseCase creates a new ListBreedingRecordsUseCase instance.
func NewListBreedingRecordsUseCase(breedingRepo adapter.BreedingRepository) *ListBreedingRecordsUseCase {
	return &ListBreedingRecordsUseCase{breedingRepo: breedingRepo}
}

// Execute retrieves all breeding records, newest mating date first.
func (uc *ListBreedingRecordsUseCase) Execute(ctx context.Context) ([]*BreedingRecordOutput, error) {
	records, err := uc.breedingRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeding records: %w", err)
	}

	outputs := make([]*BreedingRecordOutput, 0, len(records))
	for _, r := range records {
		outputs = append(outputs, toBreedingRecordOutput(r))
	}
	return outputs, nil
}
