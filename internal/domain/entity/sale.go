package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus represents the settlement status of a sale.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// ParseSaleStatus normalizes a raw sale status case-insensitively.
func ParseSaleStatus(raw string) (SaleStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed":
		return SaleStatusCompleted, true
	case "pending":
		return SaleStatusPending, true
	case "cancelled":
		return SaleStatusCancelled, true
	}
	return "", false
}

// Sale represents the sale of a single animal. An animal has at most one
// sale, and an animal in Sold status has exactly one.
type Sale struct {
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
	Status          SaleStatus
	Profit          decimal.Decimal
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewSale creates a new Sale dated today by default.
func NewSale(animalID uint, buyerName string, price decimal.Decimal) *Sale {
	now := time.Now().UTC()
	return &Sale{
		AnimalID:  animalID,
		BuyerName: buyerName,
		SaleDate:  now.Truncate(24 * time.Hour),
		Price:     price,
		Status:    SaleStatusCompleted,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SaleProfit computes sale profit: price minus the acquisition price (zero
// when unknown) minus the total of all expenses linked to the animal,
// treatment-derived expenses included. The result may be negative. The value
// is frozen on the sale row at creation time and never recomputed.
func SaleProfit(price decimal.Decimal, acquisitionPrice *decimal.Decimal, linkedExpenseTotal decimal.Decimal) decimal.Decimal {
	profit := price.Sub(linkedExpenseTotal)
	if acquisitionPrice != nil {
		profit = profit.Sub(*acquisitionPrice)
	}
	return profit
}

// ReceiptNumber derives the receipt identifier from a persisted sale id,
// zero-padded to five digits.
func ReceiptNumber(saleID uint) string {
	return fmt.Sprintf("RCPT-%05d", saleID)
}
