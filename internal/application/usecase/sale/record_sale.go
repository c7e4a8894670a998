package sale

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

// RecordSaleInput represents the input for sale creation.
type RecordSaleInput struct {
	AnimalID        uint
	BuyerName       string
	BuyerContact    string
	SaleDate        *time.Time
	Price           decimal.Decimal
	PaymentMethod   string
	PaymentReceived bool
	Purpose         string
	Status          *string
	Notes           string
}

// RecordSaleOutput represents the output of sale creation.
type RecordSaleOutput struct {
	Sale *SaleOutput
}

// RecordSaleUseCase handles sale creation. Profit freezing, receipt
// assignment and the animal status flip happen atomically in the repository.
type RecordSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewRecordSaleUseCase creates a new RecordSaleUseCase instance.
func NewRecordSaleUseCase(saleRepo adapter.SaleRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{saleRepo: saleRepo}
}

// Execute performs the sale creation.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input RecordSaleInput) (*RecordSaleOutput, error) {
	if !input.Price.IsPositive() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSalePrice,
			"price must be greater than zero",
			domainerror.ErrInvalidSalePrice,
		)
	}

	sale := entity.NewSale(input.AnimalID, input.BuyerName, input.Price)
	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	sale.BuyerContact = input.BuyerContact
	sale.PaymentMethod = input.PaymentMethod
	sale.PaymentReceived = input.PaymentReceived
	sale.Purpose = input.Purpose
	sale.Notes = input.Notes

	if input.Status != nil && *input.Status != "" {
		status, ok := entity.ParseSaleStatus(*input.Status)
		if !ok {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidSaleStatus,
				"status must be one of completed, pending, cancelled",
				domainerror.ErrInvalidSaleStatus,
			)
		}
		sale.Status = status
	}

	recorded, err := uc.saleRepo.RecordSale(ctx, sale)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrAnimalNotFound):
			return nil, domainerror.NewAnimalError(
				domainerror.ErrCodeAnimalNotFound,
				fmt.Sprintf("animal %d not found", input.AnimalID),
				domainerror.ErrAnimalNotFound,
			)
		case errors.Is(err, domainerror.ErrAnimalAlreadySold):
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeAnimalAlreadySold,
				fmt.Sprintf("animal %d is already sold", input.AnimalID),
				domainerror.ErrAnimalAlreadySold,
			)
		}
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	return &RecordSaleOutput{Sale: toSaleOutput(recorded)}, nil
}
