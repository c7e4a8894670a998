package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/application/usecase/expense"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	getUseCase    *expense.GetExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	totalsUseCase *expense.ExpenseTotalsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	totalsUseCase *expense.ExpenseTotalsUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		totalsUseCase: totalsUseCase,
	}
}

// Create handles POST /expenses/add requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidExpenseAmount),
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.invalidDate(ctx, "date")
		return
	}

	input := expense.CreateExpenseInput{
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		Date:        date,
		AnimalID:    req.AnimalID,
		Notes:       req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// List handles GET /expenses/get requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	outputs, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(outputs))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	expenseID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expenseID)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output))
}

// Update handles PATCH /expenses/:id/update requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		c.invalidDate(ctx, "date")
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		ExpenseType: req.ExpenseType,
		Amount:      req.Amount,
		Date:        date,
		AnimalID:    req.AnimalID,
		Notes:       req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id/delete requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expenseID); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Expense deleted",
	})
}

// Totals handles GET /expenses/total requests.
func (c *ExpenseController) Totals(ctx *gin.Context) {
	totals, err := c.totalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseTotalsResponse(totals))
}

func (c *ExpenseController) invalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid date format, expected YYYY-MM-DD",
		Details: field,
	})
}

// handleExpenseError handles domain errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	var animalErr *domainerror.AnimalError
	if errors.As(err, &animalErr) {
		statusCode := http.StatusBadRequest
		if animalErr.Code == domainerror.ErrCodeAnimalNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: animalErr.Message,
			Code:  string(animalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRecordError maps record-keeping error codes to HTTP status codes.
func getStatusCodeForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeNotADoe,
		domainerror.ErrCodeNotABuck,
		domainerror.ErrCodeInvalidMatingDate:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeBreedingAnimalNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
