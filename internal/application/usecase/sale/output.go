// Package sale contains sale-related use cases.
package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// SaleOutput represents a sale in use case outputs.
type SaleOutput struct {
	ID              uint
	AnimalID        uint
	BuyerName       string
	BuyerContact    string
	SaleDate        time.Time
	Price           decimal.Decimal
	PaymentMethod   string
	PaymentReceived bool
	ReceiptNumber   string
	Purpose         string
	Status          entity.SaleStatus
	Profit          decimal.Decimal
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toSaleOutput(s *entity.Sale) *SaleOutput {
	return &SaleOutput{
		ID:              s.ID,
		AnimalID:        s.AnimalID,
		BuyerName:       s.BuyerName,
		BuyerContact:    s.BuyerContact,
		SaleDate:        s.SaleDate,
		Price:           s.Price,
		PaymentMethod:   s.PaymentMethod,
		PaymentReceived: s.PaymentReceived,
		ReceiptNumber:   s.ReceiptNumber,
		Purpose:         s.Purpose,
		Status:          s.Status,
		Profit:          s.Profit,
		Notes:           s.Notes,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toSaleOutputs(sales []*entity.Sale) []*SaleOutput {
	outputs := make([]*SaleOutput, 0, len(sales))
	for _, s := range sales {
		outputs = append(outputs, toSaleOutput(s))
	}
	return outputs
}
