// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// ExpenseOutput represents an expense in use case outputs.
type ExpenseOutput struct {
	ID          uint
	ExpenseType string
	Amount      decimal.Decimal
	Date        time.Time
	AnimalID    *uint
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func toExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:          e.ID,
		ExpenseType: e.ExpenseType,
		Amount:      e.Amount,
		Date:        e.Date,
		AnimalID:    e.AnimalID,
		Notes:       e.Notes,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toExpenseOutputs(expenses []*entity.Expense) []*ExpenseOutput {
	outputs := make([]*ExpenseOutput, 0, len(expenses))
	for _, e := range expenses {
		outputs = append(outputs, toExpenseOutput(e))
	}
	return outputs
}
