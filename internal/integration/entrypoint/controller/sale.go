package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/usecase/sale"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/entrypoint/dto"
)

// SaleController handles sale endpoints.
type SaleController struct {
	recordUseCase        *sale.RecordSaleUseCase
	listUseCase          *sale.ListSalesUseCase
	getUseCase           *sale.GetSaleUseCase
	updateUseCase        *sale.UpdateSaleUseCase
	recentUseCase        *sale.RecentSalesUseCase
	totalUseCase         *sale.SalesTotalUseCase
	searchUseCase        *sale.SearchSalesUseCase
	statsUseCase         *sale.SalesStatsUseCase
	profitSummaryUseCase *sale.ProfitSummaryUseCase
	animalSalesUseCase   *sale.AnimalSalesUseCase
}

// NewSaleController creates a new sale controller instance.
func NewSaleController(
	recordUseCase *sale.RecordSaleUseCase,
	listUseCase *sale.ListSalesUseCase,
	getUseCase *sale.GetSaleUseCase,
	updateUseCase *sale.UpdateSaleUseCase,
	recentUseCase *sale.RecentSalesUseCase,
	totalUseCase *sale.SalesTotalUseCase,
	searchUseCase *sale.SearchSalesUseCase,
	statsUseCase *sale.SalesStatsUseCase,
	profitSummaryUseCase *sale.ProfitSummaryUseCase,
	animalSalesUseCase *sale.AnimalSalesUseCase,
) *SaleController {
	return &SaleController{
		recordUseCase:        recordUseCase,
		listUseCase:          listUseCase,
		getUseCase:           getUseCase,
		updateUseCase:        updateUseCase,
		recentUseCase:        recentUseCase,
		totalUseCase:         totalUseCase,
		searchUseCase:        searchUseCase,
		statsUseCase:         statsUseCase,
		profitSummaryUseCase: profitSummaryUseCase,
		animalSalesUseCase:   animalSalesUseCase,
	}
}

// Record handles POST /sales/make requests.
func (c *SaleController) Record(ctx *gin.Context) {
	var req dto.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	saleDate, err := dto.ParseDate(req.SaleDate)
	if err != nil {
		c.invalidDate(ctx, "sale_date")
		return
	}

	input := sale.RecordSaleInput{
		AnimalID:        req.AnimalID,
		BuyerName:       req.BuyerName,
		BuyerContact:    req.BuyerContact,
		SaleDate:        saleDate,
		Price:           req.Price,
		PaymentMethod:   req.PaymentMethod,
		PaymentReceived: req.PaymentReceived,
		Purpose:         req.Purpose,
		Status:          req.Status,
		Notes:           req.Notes,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(output.Sale))
}

// List handles GET /sales/ requests.
func (c *SaleController) List(ctx *gin.Context) {
	outputs, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(outputs))
}

// Get handles GET /sales/:id requests.
func (c *SaleController) Get(ctx *gin.Context) {
	saleID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output))
}

// Update handles PATCH /sales/:id requests. Profit is frozen at
// creation and never recomputed here.
func (c *SaleController) Update(ctx *gin.Context) {
	saleID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid sale ID format",
		})
		return
	}

	var req dto.UpdateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSaleFields),
		})
		return
	}

	saleDate, err := dto.ParseDate(req.SaleDate)
	if err != nil {
		c.invalidDate(ctx, "sale_date")
		return
	}

	input := sale.UpdateSaleInput{
		SaleID:          saleID,
		BuyerName:       req.BuyerName,
		BuyerContact:    req.BuyerContact,
		SaleDate:        saleDate,
		Price:           req.Price,
		PaymentMethod:   req.PaymentMethod,
		PaymentReceived: req.PaymentReceived,
		Purpose:         req.Purpose,
		Status:          req.Status,
		Notes:           req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(output.Sale))
}

// Recent handles GET /sales/recent requests.
func (c *SaleController) Recent(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit format",
			})
			return
		}
		limit = parsed
	}

	outputs, err := c.recentUseCase.Execute(ctx.Request.Context(), limit)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(outputs))
}

// Total handles GET /sales/total requests.
func (c *SaleController) Total(ctx *gin.Context) {
	total, err := c.totalUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SalesTotalResponse{TotalSales: total.StringFixed(2)})
}

// Search handles GET /sales/search requests. Filters arrive as query
// parameters and combine with AND semantics.
func (c *SaleController) Search(ctx *gin.Context) {
	input := sale.SearchSalesInput{
		BuyerName: ctx.Query("buyer_name"),
	}
	if v := ctx.Query("payment_method"); v != "" {
		input.PaymentMethod = &v
	}
	if v := ctx.Query("purpose"); v != "" {
		input.Purpose = &v
	}
	if v := ctx.Query("status"); v != "" {
		input.Status = &v
	}
	if v := ctx.Query("min_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			c.invalidQueryNumber(ctx, "min_price")
			return
		}
		input.MinPrice = &price
	}
	if v := ctx.Query("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			c.invalidQueryNumber(ctx, "max_price")
			return
		}
		input.MaxPrice = &price
	}
	if v := ctx.Query("start_date"); v != "" {
		date, err := dto.ParseDate(&v)
		if err != nil {
			c.invalidDate(ctx, "start_date")
			return
		}
		input.StartDate = date
	}
	if v := ctx.Query("end_date"); v != "" {
		date, err := dto.ParseDate(&v)
		if err != nil {
			c.invalidDate(ctx, "end_date")
			return
		}
		input.EndDate = date
	}

	outputs, err := c.searchUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(outputs))
}

// Stats handles GET /sales/stats/:grouping requests.
func (c *SaleController) Stats(ctx *gin.Context) {
	grouping := ctx.Param("grouping")

	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), grouping)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleStatsResponse(grouping, stats))
}

// ProfitSummary handles GET /sales/total_profit requests.
func (c *SaleController) ProfitSummary(ctx *gin.Context) {
	summary, err := c.profitSummaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfitSummaryResponse(summary))
}

// AnimalSales handles GET /sales/animal/:id requests.
func (c *SaleController) AnimalSales(ctx *gin.Context) {
	animalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid animal ID format",
		})
		return
	}

	outputs, err := c.animalSalesUseCase.List(ctx.Request.Context(), animalID)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(outputs))
}

// AnimalSalesTotal handles GET /sales/animal/:id/total requests.
func (c *SaleController) AnimalSalesTotal(ctx *gin.Context) {
	animalID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid animal ID format",
		})
		return
	}

	total, err := c.animalSalesUseCase.Total(ctx.Request.Context(), animalID)
	if err != nil {
		c.handleSaleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SalesTotalResponse{TotalSales: total.StringFixed(2)})
}

func (c *SaleController) invalidDate(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid date format, expected YYYY-MM-DD",
		Details: field,
	})
}

func (c *SaleController) invalidQueryNumber(ctx *gin.Context, field string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid numeric value",
		Details: field,
	})
}

// handleSaleError handles domain errors and returns appropriate HTTP responses.
func (c *SaleController) handleSaleError(ctx *gin.Context, err error) {
	var saleErr *domainerror.SaleError
	if errors.As(err, &saleErr) {
		ctx.JSON(c.getStatusCodeForSaleError(saleErr.Code), dto.ErrorResponse{
			Error: saleErr.Message,
			Code:  string(saleErr.Code),
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

// getStatusCodeForSaleError maps sale error codes to HTTP status codes.
func (c *SaleController) getStatusCodeForSaleError(code domainerror.SaleErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSalePrice,
		domainerror.ErrCodeInvalidSaleStatus,
		domainerror.ErrCodeInvalidSaleDate,
		domainerror.ErrCodeMissingSaleFields,
		domainerror.ErrCodeInvalidSaleGrouping:
		return http.StatusBadRequest
	case domainerror.ErrCodeSaleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeAnimalAlreadySold:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
