package dto

import (
	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/application/usecase/sale"
	"github.com/goat-farm/backend/internal/domain/report"
)

// CreateSaleRequest represents the request body for sale creation.
type CreateSaleRequest struct {
	AnimalID        uint            `json:"animal_id" binding:"required"`
	BuyerName       string          `json:"buyer_name" binding:"required,min=1,max=100"`
	BuyerContact    string          `json:"buyer_contact"`
	SaleDate        *string         `json:"sale_date"`
	Price           decimal.Decimal `json:"price" binding:"required"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentReceived bool            `json:"payment_received"`
	Purpose         string          `json:"purpose"`
	Status          *string         `json:"status"`
	Notes           string          `json:"notes"`
}

// UpdateSaleRequest represents the request body for sale update.
type UpdateSaleRequest struct {
	BuyerName       *string          `json:"buyer_name"`
	BuyerContact    *string          `json:"buyer_contact"`
	SaleDate        *string          `json:"sale_date"`
	Price           *decimal.Decimal `json:"price"`
	PaymentMethod   *string          `json:"payment_method"`
	PaymentReceived *bool            `json:"payment_received"`
	Purpose         *string          `json:"purpose"`
	Status          *string          `json:"status"`
	Notes           *string          `json:"notes"`
}

// SaleResponse represents a sale in API responses.
type SaleResponse struct {
	ID              uint   `json:"id"`
	AnimalID        uint   `json:"animal_id"`
	BuyerName       string `json:"buyer_name"`
	BuyerContact    string `json:"buyer_contact"`
	SaleDate        string `json:"sale_date"`
	Price           string `json:"price"`
	PaymentMethod   string `json:"payment_method"`
	PaymentReceived bool   `json:"payment_received"`
	ReceiptNumber   string `json:"receipt_number"`
	Purpose         string `json:"purpose"`
	Status          string `json:"status"`
	Profit          string `json:"profit"`
	Notes           string `json:"notes"`
}

// SaleListResponse represents a list of sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
	Count int            `json:"count"`
}

// SaleStatResponse is one group in the sales stats response.
type SaleStatResponse struct {
	Key          string `json:"key"`
	TotalSales   int    `json:"total_sales"`
	TotalRevenue string `json:"total_revenue"`
	TotalProfit  string `json:"total_profit"`
}

// SaleStatsResponse represents the grouped sales aggregation.
type SaleStatsResponse struct {
	Grouping string             `json:"grouping"`
	Stats    []SaleStatResponse `json:"stats"`
}

// SalesTotalResponse represents a revenue sum.
type SalesTotalResponse struct {
	TotalSales string `json:"total_sales"`
}

// ProfitSummaryResponse represents frozen profit over three windows.
type ProfitSummaryResponse struct {
	TotalProfit    string `json:"total_profit"`
	AnnualProfit   string `json:"annual_profit"`
	LifetimeProfit string `json:"lifetime_profit"`
}

// ToSaleResponse converts a use case output to its response DTO.
func ToSaleResponse(output *sale.SaleOutput) SaleResponse {
	return SaleResponse{
		ID:              output.ID,
		AnimalID:        output.AnimalID,
		BuyerName:       output.BuyerName,
		BuyerContact:    output.BuyerContact,
		SaleDate:        formatDateValue(output.SaleDate),
		Price:           output.Price.StringFixed(2),
		PaymentMethod:   output.PaymentMethod,
		PaymentReceived: output.PaymentReceived,
		ReceiptNumber:   output.ReceiptNumber,
		Purpose:         output.Purpose,
		Status:          string(output.Status),
		Profit:          output.Profit.StringFixed(2),
		Notes:           output.Notes,
	}
}

// ToSaleListResponse converts a slice of outputs to a list response.
func ToSaleListResponse(outputs []*sale.SaleOutput) SaleListResponse {
	sales := make([]SaleResponse, 0, len(outputs))
	for _, o := range outputs {
		sales = append(sales, ToSaleResponse(o))
	}
	return SaleListResponse{Sales: sales, Count: len(sales)}
}

// ToSaleStatsResponse converts grouped stats to the response DTO.
func ToSaleStatsResponse(grouping string, stats []report.SaleStat) SaleStatsResponse {
	response := SaleStatsResponse{
		Grouping: grouping,
		Stats:    make([]SaleStatResponse, 0, len(stats)),
	}
	for _, s := range stats {
		response.Stats = append(response.Stats, SaleStatResponse{
			Key:          s.Key,
			TotalSales:   s.TotalSales,
			TotalRevenue: s.TotalRevenue.StringFixed(2),
			TotalProfit:  s.TotalProfit.StringFixed(2),
		})
	}
	return response
}

// ToProfitSummaryResponse converts the profit summary to its response DTO.
func ToProfitSummaryResponse(summary *adapter.ProfitSummary) ProfitSummaryResponse {
	return ProfitSummaryResponse{
		TotalProfit:    summary.Last30Days.StringFixed(2),
		AnnualProfit:   summary.CurrentYear.StringFixed(2),
		LifetimeProfit: summary.Lifetime.StringFixed(2),
	}
}
