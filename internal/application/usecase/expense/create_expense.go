package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for a user-entered expense.
// AnimalID optionally links the expense to one animal.
type CreateExpenseInput struct {
	ExpenseType string
	Amount      decimal.Decimal
	Date        *time.Time
	AnimalID    *uint
	Notes       string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	animalRepo  adapter.AnimalRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, animalRepo adapter.AnimalRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo, animalRepo: animalRepo}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	if input.AnimalID != nil {
		if _, err := uc.animalRepo.FindByID(ctx, *input.AnimalID); err != nil {
			if errors.Is(err, domainerror.ErrAnimalNotFound) {
				return nil, domainerror.NewAnimalError(
					domainerror.ErrCodeAnimalNotFound,
					fmt.Sprintf("animal %d not found", *input.AnimalID),
					domainerror.ErrAnimalNotFound,
				)
			}
			return nil, fmt.Errorf("failed to look up animal: %w", err)
		}
	}

	expense := entity.NewExpense(input.ExpenseType, input.Amount)
	if input.Date != nil {
		expense.Date = *input.Date
	}
	expense.AnimalID = input.AnimalID
	expense.Notes = input.Notes

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: toExpenseOutput(expense)}, nil
}
