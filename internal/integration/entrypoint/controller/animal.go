package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goat-farm/backend/internal/application/usecase/animal"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// AnimalController handles herd management endpoints.
type AnimalController struct {
	createUseCase  *animal.CreateAnimalUseCase
	listUseCase    *animal.ListAnimalsUseCase
	getUseCase     *animal.GetAnimalUseCase
	updateUseCase  *animal.UpdateAnimalUseCase
	archiveUseCase *animal.ListArchiveUseCase
	totalsUseCase  *animal.AnimalTotalsUseCase
}

// NewAnimalController creates a new animal controller instance.
func NewAnimalController(
	createUseCase *animal.CreateAnimalUseCase,
	listUseCase *animal.ListAnimalsUseCase,
	getUseCase *animal.GetAnimalUseCase,
	updateUseCase *animal.UpdateAnimalUseCase,
	archiveUseCase *animal.ListArchiveUseCase,
	totalsUseCase *animal.AnimalTotalsUseCase,
) *AnimalController {
	return &AnimalController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		archiveUseCase: archiveUseCase,
		totalsUseCase:  totalsUseCase,
	}
}

// Create handles POST /animals/add requests.
func (c *AnimalController) Create(ctx *gin.Context) {
	var req dto.CreateAnimalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAnimalFields),
		})
		return
	}

	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		c.invalidDate(ctx, "birth_date")
		return
	}
	acquisitionDate, err := dto.ParseDate(req.AcquisitionDate)
	if err != nil {
		c.invalidDate(ctx, "acquisition_date")
		return
	}

	input := animal.CreateAnimalInput{
		TagID:             req.TagID,
		Breed:             req.Breed,
		Sex:               req.Sex,
		BirthDate:         birthDate,
		Weight:            req.Weight,
		HealthStatus:      req.HealthStatus,
		Notes:             req.Notes,
		Category:          req.Category,
		AcquisitionDate:   acquisitionDate,
		AcquisitionPrice:  req.AcquisitionPrice,
		AcquisitionSource: req.AcquisitionSource,
		MotherID:          req.MotherID,
		FatherID:          req.FatherID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnimalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCreateAnimalResponse(output.Animal))
}

// List handles GET /animals/get requests.
func (c *AnimalController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnimalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnimalListResponse(output.Animals))
}

// Get handles GET /animals/:id requests.
func (c *AnimalController) Get(ctx *gin.Context) {
	animalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid animal ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), animal.GetAnimalInput{AnimalID: animalID})
	if err != nil {
		c.handleAnimalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnimalDetailResponse(output))
}

// Update handles PATCH /animals/:id/update requests.
func (c *AnimalController) Update(ctx *gin.Context) {
	animalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid animal ID format",
		})
		return
	}

	var req dto.UpdateAnimalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAnimalFields),
		})
		return
	}

	birthDate, err := dto.ParseDate(req.BirthDate)
	if err != nil {
		c.invalidDate(ctx, "birth_date")
		return
	}
	acquisitionDate, err := dto.ParseDate(req.AcquisitionDate)
	if err != nil {
		c.invalidDate(ctx, "acquisition_date")
		return
	}

	input := animal.UpdateAnimalInput{
		AnimalID:          animalID,
		TagID:             req.TagID,
		Breed:             req.Breed,
		Sex:               req.Sex,
		BirthDate:         birthDate,
		Weight:            req.Weight,
		HealthStatus:      req.HealthStatus,
		Notes:             req.Notes,
		Category:          req.Category,
		Status:            req.Status,
		AcquisitionDate:   acquisitionDate,
		AcquisitionPrice:  req.AcquisitionPrice,
		AcquisitionSource: req.AcquisitionSource,
		MotherID:          req.MotherID,
		FatherID:          req.FatherID,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnimalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnimalResponse(output.Animal))
}

// Archive handles GET /animals/archive requests. An optional status query
// parameter narrows the listing to one non-active status.
func (c *AnimalController) Archive(ctx *gin.Context) {
	input := animal.ListArchiveInput{}
	if status := ctx.Query("status"); status != "" {
		input.Status = &status
	}

	output, err := c.archiveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnimalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnimalListResponse(output.Animals))
}

// Totals handles GET /animals/total/animals requests.
func (c *AnimalController) Totals(ctx *gin.Context) {
	output, err := c.totalsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAnimalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnimalTotalsResponse(output))
}

func (c *AnimalController) invalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid date format, expected YYYY-MM-DD",
		Details: field,
	})
}

// handleAnimalError handles domain errors and returns appropriate HTTP responses.
func (c *AnimalController) handleAnimalError(ctx *gin.Context, err error) {
	var animalErr *domainerror.AnimalError
	if errors.As(err, &animalErr) {
		ctx.JSON(c.getStatusCodeForAnimalError(animalErr.Code), dto.ErrorResponse{
			Error: animalErr.Message,
			Code:  string(animalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAnimalError maps animal error codes to HTTP status codes.
func (c *AnimalController) getStatusCodeForAnimalError(code domainerror.AnimalErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSex,
		domainerror.ErrCodeInvalidAnimalStatus,
		domainerror.ErrCodeMissingAnimalFields,
		domainerror.ErrCodeParentageCycle:
		return http.StatusBadRequest
	case domainerror.ErrCodeAnimalNotFound,
		domainerror.ErrCodeParentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateTagID:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
