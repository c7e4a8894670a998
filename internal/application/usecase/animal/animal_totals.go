package animal

import (
	"context"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	"github.com/goat-farm/backend/internal/domain/report"
)

// AnimalTotalsOutput represents the herd headcount with a per-category
// breakdown of active animals.
type AnimalTotalsOutput struct {
	Total           int
	CategorySummary []report.CategoryCount
}

// AnimalTotalsUseCase computes the active herd summary.
type AnimalTotalsUseCase struct {
	animalRepo adapter.AnimalRepository
}

// NewAnimalTotalsUseCase creates a new AnimalTotalsUseCase instance.
func NewAnimalTotalsUseCase(animalRepo adapter.AnimalRepository) *AnimalTotalsUseCase {
	return &AnimalTotalsUseCase{animalRepo: animalRepo}
}

// Execute counts active animals grouped by category.
func (uc *AnimalTotalsUseCase) Execute(ctx context.Context) (*AnimalTotalsOutput, error) {
	animals, err := uc.animalRepo.FindByStatus(ctx, entity.AnimalStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count animals: %w", err)
	}

	return &AnimalTotalsOutput{
		Total:           len(animals),
		CategorySummary: report.CategorySummary(animals),
	}, nil
}
