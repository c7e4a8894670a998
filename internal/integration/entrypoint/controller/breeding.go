package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/application/usecase/breeding"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// BreedingController handles breeding record endpoints.
type BreedingController struct {
	createUseCase *breeding.CreateBreedingRecordUseCase
	listUseCase   *breeding.ListBreedingRecordsUseCase
}

// NewBreedingController creates a new breeding controller instance.
func NewBreedingController(
	createUseCase *breeding.CreateBreedingRecordUseCase,
	listUseCase *breeding.ListBreedingRecordsUseCase,
) *BreedingController {
	return &BreedingController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /breeding/add requests.
func (c *BreedingController) Create(ctx *gin.Context) {
	var req dto.CreateBreedingRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidMatingDate),
		})
		return
	}

	matingDate, err := time.Parse("2006-01-02", req.MatingDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid date format, expected YYYY-MM-DD",
			Details: "mating_date",
			Code:    string(domainerror.ErrCodeInvalidMatingDate),
		})
		return
	}

	input := breeding.CreateBreedingRecordInput{
		DoeID:      req.DoeID,
		BuckID:     req.BuckID,
		MatingDate: matingDate,
		Notes:      req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBreedingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBreedingRecordResponse(output.Record))
}

// List handles GET /breeding/get requests.
func (c *BreedingController) List(ctx *gin.Context) {
	outputs, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleBreedingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreedingRecordListResponse(outputs))
}

// handleBreedingError handles domain errors and returns appropriate HTTP responses.
func (c *BreedingController) handleBreedingError(ctx *gin.Context, err error) {
	var recordErr *domainerror.RecordError
	if errors.As(err, &recordErr) {
		ctx.JSON(getStatusCodeForRecordError(recordErr.Code), dto.ErrorResponse{
			Error: recordErr.Message,
			Code:  string(recordErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
