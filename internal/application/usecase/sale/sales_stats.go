package sale

import (
	"context"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/domain/report"
)

// SalesStatsUseCase aggregates sales by a caller-selected grouping.
type SalesStatsUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewSalesStatsUseCase creates a new SalesStatsUseCase instance.
func NewSalesStatsUseCase(saleRepo adapter.SaleRepository) *SalesStatsUseCase {
	return &SalesStatsUseCase{saleRepo: saleRepo}
}

// Execute groups every sale by the given raw grouping key.
func (uc *SalesStatsUseCase) Execute(ctx context.Context, rawGrouping string) ([]report.SaleStat, error) {
	grouping, ok := report.ParseSaleGrouping(rawGrouping)
	if !ok {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleGrouping,
			fmt.Sprintf("unknown grouping %q", rawGrouping),
			domainerror.ErrInvalidSaleGrouping,
		)
	}

	sales, err := uc.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales for stats: %w", err)
	}

	return report.SaleStats(sales, grouping), nil
}
