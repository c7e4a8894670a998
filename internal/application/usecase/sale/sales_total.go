package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
)

// SalesTotalUseCase computes the lifetime revenue across all sales.
type SalesTotalUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewSalesTotalUseCase creates a new SalesTotalUseCase instance.
func NewSalesTotalUseCase(saleRepo adapter.SaleRepository) *SalesTotalUseCase {
	return &SalesTotalUseCase{saleRepo: saleRepo}
}

// Execute sums the price of every sale.
func (uc *SalesTotalUseCase) Execute(ctx context.Context) (decimal.Decimal, error) {
	total, err := uc.saleRepo.TotalPrice(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to total sales: %w", err)
	}
	return total, nil
}

// ProfitSummaryUseCase computes frozen profit over three windows.
type ProfitSummaryUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewProfitSummaryUseCase creates a new ProfitSummaryUseCase instance.
func NewProfitSummaryUseCase(saleRepo adapter.SaleRepository) *ProfitSummaryUseCase {
	return &ProfitSummaryUseCase{saleRepo: saleRepo}
}

// Execute sums frozen profit over the trailing 30 days, the current calendar
// year and all time.
func (uc *ProfitSummaryUseCase) Execute(ctx context.Context) (*adapter.ProfitSummary, error) {
	summary, err := uc.saleRepo.ProfitSummary(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to summarize profit: %w", err)
	}
	return summary, nil
}
