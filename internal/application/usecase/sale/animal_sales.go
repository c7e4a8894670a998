package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// AnimalSalesUseCase retrieves sales and sale totals for one animal.
type AnimalSalesUseCase struct {
	saleRepo   adapter.SaleRepository
	animalRepo adapter.AnimalRepository
}

// NewAnimalSalesUseCase creates a new AnimalSalesUseCase instance.
func NewAnimalSalesUseCase(saleRepo adapter.SaleRepository, animalRepo adapter.AnimalRepository) *AnimalSalesUseCase {
	return &AnimalSalesUseCase{saleRepo: saleRepo, animalRepo: animalRepo}
}

// List retrieves all sales recorded for the animal.
func (uc *AnimalSalesUseCase) List(ctx context.Context, animalID uint) ([]*SaleOutput, error) {
	if err := uc.requireAnimal(ctx, animalID); err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.FindByAnimal(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list animal sales: %w", err)
	}
	return toSaleOutputs(sales), nil
}

// Total sums the sale prices recorded for the animal.
func (uc *AnimalSalesUseCase) Total(ctx context.Context, animalID uint) (decimal.Decimal, error) {
	if err := uc.requireAnimal(ctx, animalID); err != nil {
		return decimal.Zero, err
	}
	total, err := uc.saleRepo.TotalPriceByAnimal(ctx, animalID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total animal sales: %w", err)
	}
	return total, nil
}

func (uc *AnimalSalesUseCase) requireAnimal(ctx context.Context, animalID uint) error {
	if _, err := uc.animalRepo.FindByID(ctx, animalID); err != nil {
		if errors.Is(err, domainerror.ErrAnimalNotFound) {
			return domainerror.NewAnimalError(
				domainerror.ErrCodeAnimalNotFound,
				fmt.Sprintf("animal %d not found", animalID),
				domainerror.ErrAnimalNotFound,
			)
		}
		return fmt.Errorf("failed to look up animal: %w", err)
	}
	return nil
}
