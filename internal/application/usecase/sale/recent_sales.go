package sale

import (
	"context"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
)

const defaultRecentLimit = 5

// RecentSalesUseCase lists the most recent sales for dashboard views.
type RecentSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewRecentSalesUseCase creates a new RecentSalesUseCase instance.
func NewRecentSalesUseCase(saleRepo adapter.SaleRepository) *RecentSalesUseCase {
	return &RecentSalesUseCase{saleRepo: saleRepo}
}

// Execute retrieves the limit most recent sales by sale date. A non-positive
// limit falls back to the default of five.
func (uc *RecentSalesUseCase) Execute(ctx context.Context, limit int) ([]*SaleOutput, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	sales, err := uc.saleRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent sales: %w", err)
	}
	return toSaleOutputs(sales), nil
}
