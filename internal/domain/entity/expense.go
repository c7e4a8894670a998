package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseTypeTreatment marks expenses derived automatically from a treatment
// cost. Both user-entered and derived expenses are stored uniformly.
const ExpenseTypeTreatment = "Treatment"

// Expense represents money spent, either standalone (feed, staff) or linked
// to a specific animal.
type Expense struct {
	ID          uint
	ExpenseType string
	Amount      decimal.Decimal
	Date        time.Time
	AnimalID    *uint
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense dated today by default.
func NewExpense(expenseType string, amount decimal.Decimal) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ExpenseType: expenseType,
		Amount:      amount,
		Date:        now.Truncate(24 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
