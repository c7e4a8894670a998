package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	ExpenseType string          `json:"expense_type" binding:"required,min=1,max=50"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        *string         `json:"date"`
	AnimalID    *uint           `json:"animal_id"`
	Notes       string          `json:"notes"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	ExpenseType *string          `json:"expense_type"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	AnimalID    *uint            `json:"animal_id"`
	Notes       *string          `json:"notes"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          uint   `json:"id"`
	ExpenseType string `json:"expense_type"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	AnimalID    *uint  `json:"animal_id"`
	Notes       string `json:"notes"`
}

// ExpenseListResponse represents a list of expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// ExpenseTotalsResponse represents the expense totals.
type ExpenseTotalsResponse struct {
	Last30Days string `json:"total_expenses_last_30_days"`
	AllTime    string `json:"total_expenses_all_time"`
}

// ToExpenseResponse converts a use case output to its response DTO.
func ToExpenseResponse(output *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:          output.ID,
		ExpenseType: output.ExpenseType,
		Amount:      output.Amount.StringFixed(2),
		Date:        formatDateValue(output.Date),
		AnimalID:    output.AnimalID,
		Notes:       output.Notes,
	}
}

// ToExpenseListResponse converts a slice of outputs to a list response.
func ToExpenseListResponse(outputs []*expense.ExpenseOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, 0, len(outputs))
	for _, o := range outputs {
		expenses = append(expenses, ToExpenseResponse(o))
	}
	return ExpenseListResponse{Expenses: expenses, Count: len(expenses)}
}

// ToExpenseTotalsResponse converts the totals to its response DTO.
func ToExpenseTotalsResponse(totals *adapter.ExpenseTotals) ExpenseTotalsResponse {
	return ExpenseTotalsResponse{
		Last30Days: totals.Last30Days.StringFixed(2),
		AllTime:    totals.AllTime.StringFixed(2),
	}
}
