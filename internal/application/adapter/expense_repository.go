package adapter

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// ExpenseTotals holds the trailing-window and lifetime expense sums.
type ExpenseTotals struct {
	Last30Days decimal.Decimal
	AllTime    decimal.Decimal
}

// ExpenseRepository defines the contract for expense data operations.
type ExpenseRepository interface {
	// Create persists a user-entered expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its id.
	FindByID(ctx context.Context, id uint) (*entity.Expense, error)

	// FindAll retrieves all expenses, newest date first.
	FindAll(ctx context.Context) ([]*entity.Expense, error)

	// Totals sums amounts over the trailing 30 days (inclusive) and all time,
	// relative to now.
	Totals(ctx context.Context, now time.Time) (*ExpenseTotals, error)

	// Update persists changes to an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense.
	Delete(ctx context.Context, id uint) error
}
