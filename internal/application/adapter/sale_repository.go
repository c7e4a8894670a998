package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// SaleFilter holds the optional predicates for sales search. Nil or empty
// fields mean no constraint on that field; all present predicates are
// combined with AND.
type SaleFilter struct {
	BuyerName     string
	PaymentMethod *string
	Purpose       *string
	Status        *entity.SaleStatus
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	StartDate     *time.Time
	EndDate       *time.Time
}

// ProfitSummary aggregates the frozen per-sale profit over three windows.
type ProfitSummary struct {
	Last30Days  decimal.Decimal
	CurrentYear decimal.Decimal
	Lifetime    decimal.Decimal
}

// SaleRepository defines the contract for sale data operations.
type SaleRepository interface {
	// RecordSale atomically persists the sale, assigns its receipt number,
	// freezes the profit figure and flips the animal's status to Sold. It
	// returns domain errors when the animal is missing or already sold.
	RecordSale(ctx context.Context, sale *entity.Sale) (*entity.Sale, error)

	// FindByID retrieves a sale by its id.
	FindByID(ctx context.Context, id uint) (*entity.Sale, error)

	// FindAll retrieves all sales, newest sale date first.
	FindAll(ctx context.Context) ([]*entity.Sale, error)

	// FindRecent retrieves the most recent sales by sale date.
	FindRecent(ctx context.Context, limit int) ([]*entity.Sale, error)

	// FindByAnimal retrieves all sales recorded for one animal.
	FindByAnimal(ctx context.Context, animalID uint) ([]*entity.Sale, error)

	// FindByFilter retrieves sales matching the AND of all present predicates.
	FindByFilter(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)

	// TotalPrice sums the price of every sale.
	TotalPrice(ctx context.Context) (decimal.Decimal, error)

	// TotalPriceByAnimal sums the price of one animal's sales.
	TotalPriceByAnimal(ctx context.Context, animalID uint) (decimal.Decimal, error)

	// ProfitSummary sums frozen profit over the trailing 30 days, the current
	// calendar year and all time, relative to now.
	ProfitSummary(ctx context.Context, now time.Time) (*ProfitSummary, error)

	// Update persists changes to an existing sale.
	Update(ctx context.Context, sale *entity.Sale) error
}
