package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// SearchSalesInput represents the optional search predicates. All present
// predicates are combined with AND.
type SearchSalesInput struct {
	BuyerName     string
	PaymentMethod *string
	Purpose       *string
	Status        *string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
}

// SearchSalesUseCase handles filtered sales search.
type SearchSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewSearchSalesUseCase creates a new SearchSalesUseCase instance.
func NewSearchSalesUseCase(saleRepo adapter.SaleRepository) *SearchSalesUseCase {
	return &SearchSalesUseCase{saleRepo: saleRepo}
}

// Execute retrieves sales matching every present predicate.
func (uc *SearchSalesUseCase) Execute(ctx context.Context, input SearchSalesInput) ([]*SaleOutput, error) {
	filter := adapter.SaleFilter{
		BuyerName:     input.BuyerName,
		PaymentMethod: input.PaymentMethod,
		Purpose:       input.Purpose,
		MinPrice:      input.MinPrice,
		MaxPrice:      input.MaxPrice,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
	}

	if input.Status != nil && *input.Status != "" {
		status, ok := entity.ParseSaleStatus(*input.Status)
		if !ok {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeInvalidSaleStatus,
				"status must be one of completed, pending, cancelled",
				domainerror.ErrInvalidSaleStatus,
			)
		}
		filter.Status = &status
	}

	sales, err := uc.saleRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search sales: %w", err)
	}
	return toSaleOutputs(sales), nil
}
