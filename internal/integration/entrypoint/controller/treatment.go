package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/application/usecase/treatment"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// TreatmentController handles health treatment endpoints.
type TreatmentController struct {
	recordUseCase *treatment.RecordTreatmentUseCase
	listUseCase   *treatment.ListTreatmentsUseCase
	getUseCase    *treatment.GetTreatmentUseCase
	updateUseCase *treatment.UpdateTreatmentUseCase
	deleteUseCase *treatment.DeleteTreatmentUseCase
}

// NewTreatmentController creates a new treatment controller instance.
func NewTreatmentController(
	recordUseCase *treatment.RecordTreatmentUseCase,
	listUseCase *treatment.ListTreatmentsUseCase,
	getUseCase *treatment.GetTreatmentUseCase,
	updateUseCase *treatment.UpdateTreatmentUseCase,
	deleteUseCase *treatment.DeleteTreatmentUseCase,
) *TreatmentController {
	return &TreatmentController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Record handles POST /treatments/add requests.
func (c *TreatmentController) Record(ctx *gin.Context) {
	var req dto.CreateTreatmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTreatmentFields),
		})
		return
	}

	treatmentDate, err := dto.ParseDate(req.TreatmentDate)
	if err != nil {
		c.invalidDate(ctx, "treatment_date")
		return
	}
	nextDueDate, err := dto.ParseDate(req.NextDueDate)
	if err != nil {
		c.invalidDate(ctx, "next_due_date")
		return
	}

	input := treatment.RecordTreatmentInput{
		AnimalID:      req.AnimalID,
		TreatmentType: req.TreatmentType,
		CustomType:    req.CustomType,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		TreatmentDate: treatmentDate,
		NextDueDate:   nextDueDate,
		Outcome:       req.Outcome,
		Cost:          req.Cost,
		Notes:         req.Notes,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTreatmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateTreatmentResponse{
		Treatment:      dto.ToTreatmentResponse(output.Treatment),
		ExpenseCreated: output.ExpenseCreated,
	})
}

// List handles GET /treatments/get requests. An optional animal_id query
// parameter narrows the listing to one animal.
func (c *TreatmentController) List(ctx *gin.Context) {
	input := treatment.ListTreatmentsInput{}
	if raw := ctx.Query("animal_id"); raw != "" {
		animalID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid animal ID format",
			})
			return
		}
		id := uint(animalID)
		input.AnimalID = &id
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTreatmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTreatmentListResponse(output.Treatments))
}

// Get handles GET /treatments/:id requests.
func (c *TreatmentController) Get(ctx *gin.Context) {
	treatmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid treatment ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), treatmentID)
	if err != nil {
		c.handleTreatmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTreatmentResponse(output))
}

// Update handles PATCH /treatments/:id/update requests.
func (c *TreatmentController) Update(ctx *gin.Context) {
	treatmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid treatment ID format",
		})
		return
	}

	var req dto.UpdateTreatmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTreatmentFields),
		})
		return
	}

	treatmentDate, err := dto.ParseDate(req.TreatmentDate)
	if err != nil {
		c.invalidDate(ctx, "treatment_date")
		return
	}
	nextDueDate, err := dto.ParseDate(req.NextDueDate)
	if err != nil {
		c.invalidDate(ctx, "next_due_date")
		return
	}

	input := treatment.UpdateTreatmentInput{
		TreatmentID:   treatmentID,
		TreatmentType: req.TreatmentType,
		CustomType:    req.CustomType,
		Medication:    req.Medication,
		Dosage:        req.Dosage,
		TreatmentDate: treatmentDate,
		NextDueDate:   nextDueDate,
		Outcome:       req.Outcome,
		Cost:          req.Cost,
		Notes:         req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTreatmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTreatmentResponse(output.Treatment))
}

// Delete handles DELETE /treatments/:id/delete requests.
func (c *TreatmentController) Delete(ctx *gin.Context) {
	treatmentID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid treatment ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), treatmentID); err != nil {
		c.handleTreatmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Treatment deleted",
	})
}

func (c *TreatmentController) invalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid date format, expected YYYY-MM-DD",
		Details: field,
	})
}

// handleTreatmentError handles domain errors and returns appropriate HTTP responses.
func (c *TreatmentController) handleTreatmentError(ctx *gin.Context, err error) {
	var treatmentErr *domainerror.TreatmentError
	if errors.As(err, &treatmentErr) {
		ctx.JSON(c.getStatusCodeForTreatmentError(treatmentErr.Code), dto.ErrorResponse{
			Error: treatmentErr.Message,
			Code:  string(treatmentErr.Code),
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

// getStatusCodeForTreatmentError maps treatment error codes to HTTP status codes.
func (c *TreatmentController) getStatusCodeForTreatmentError(code domainerror.TreatmentErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidTreatmentType,
		domainerror.ErrCodeMissingCustomType,
		domainerror.ErrCodeInvalidTreatmentCost,
		domainerror.ErrCodeMissingTreatmentFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeTreatmentNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
