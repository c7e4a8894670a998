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

// UpdateSaleInput represents the input for sale update. Only non-nil fields
// change. Profit stays frozen at its creation-time value even when the price
// changes.
type UpdateSaleInput struct {
	SaleID          uint
	BuyerName       *string
	BuyerContact    *string
	SaleDate        *time.Time
	Price           *decimal.Decimal
	PaymentMethod   *string
	PaymentReceived *bool
	Purpose         *string
	Status          *string
	Notes           *string
}

// UpdateSaleOutput represents the output of sale update.
type UpdateSaleOutput struct {
	Sale *SaleOutput
}

// UpdateSaleUseCase handles sale update logic.
type UpdateSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{saleRepo: saleRepo}
}

// Execute performs the sale update.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	if input.BuyerName != nil {
		sale.BuyerName = *input.BuyerName
	}
	if input.BuyerContact != nil {
		sale.BuyerContact = *input.BuyerContact
	}
	if input.SaleDate != nil {
		sale.SaleDate = *input.SaleDate
	}
	if input.Price != nil {
		if !input.Price.IsPositive() {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidSalePrice,
				"price must be greater than zero",
				domainerror.ErrInvalidSalePrice,
			)
		}
		sale.Price = *input.Price
	}
	if input.PaymentMethod != nil {
		sale.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentReceived != nil {
		sale.PaymentReceived = *input.PaymentReceived
	}
	if input.Purpose != nil {
		sale.Purpose = *input.Purpose
	}
	if input.Status != nil {
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
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}

	sale.UpdatedAt = time.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	return &UpdateSaleOutput{Sale: toSaleOutput(sale)}, nil
}
