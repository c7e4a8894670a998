package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// ListSalesUseCase handles sale listing logic.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute retrieves all sales, newest first.
func (uc *ListSalesUseCase) Execute(ctx context.Context) ([]*SaleOutput, error) {
	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return toSaleOutputs(sales), nil
}

// GetSaleUseCase handles single sale retrieval.
type GetSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewGetSaleUseCase creates a new GetSaleUseCase instance.
func NewGetSaleUseCase(saleRepo adapter.SaleRepository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

// Execute retrieves one sale by id.
func (uc *GetSaleUseCase) Execute(ctx context.Context, id uint) (*SaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, id)
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
	return toSaleOutput(sale), nil
}
