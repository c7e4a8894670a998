package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves all expenses, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context) ([]*ExpenseOutput, error) {
	expenses, err := uc.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return toExpenseOutputs(expenses), nil
}

// GetExpenseUseCase handles single expense retrieval.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves one expense by id.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, id uint) (*ExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewRecordError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return toExpenseOutput(expense), nil
}

// ExpenseTotalsUseCase computes the trailing-window and lifetime totals.
type ExpenseTotalsUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewExpenseTotalsUseCase creates a new ExpenseTotalsUseCase instance.
func NewExpenseTotalsUseCase(expenseRepo adapter.ExpenseRepository) *ExpenseTotalsUseCase {
	return &ExpenseTotalsUseCase{expenseRepo: expenseRepo}
}

// Execute sums expense amounts over the trailing 30 days and all time.
func (uc *ExpenseTotalsUseCase) Execute(ctx context.Context) (*adapter.ExpenseTotals, error) {
	totals, err := uc.expenseRepo.Totals(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to total expenses: %w", err)
	}
	return totals, nil
}
