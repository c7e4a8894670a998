package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database. The unique index on
// AnimalID backstops the one-sale-per-animal rule at the storage level.
type SaleModel struct {
	ID              uint            `gorm:"primaryKey"`
	AnimalID        uint            `gorm:"not null;uniqueIndex"`
	BuyerName       string          `gorm:"type:varchar(100);not null"`
	BuyerContact    string          `gorm:"type:varchar(100)"`
	SaleDate        time.Time       `gorm:"type:date;not null;index"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod   string          `gorm:"type:varchar(50)"`
	PaymentReceived bool            `gorm:"default:false"`
	ReceiptNumber   string          `gorm:"type:varchar(20)"`
	Purpose         string          `gorm:"type:varchar(50)"`
	Status          string          `gorm:"type:varchar(20);not null;default:completed"`
	Profit          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Notes           string          `gorm:"type:text"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:              m.ID,
		AnimalID:        m.AnimalID,
		BuyerName:       m.BuyerName,
		BuyerContact:    m.BuyerContact,
		SaleDate:        m.SaleDate,
		Price:           m.Price,
		PaymentMethod:   m.PaymentMethod,
		PaymentReceived: m.PaymentReceived,
		ReceiptNumber:   m.ReceiptNumber,
		Purpose:         m.Purpose,
		Status:          entity.SaleStatus(m.Status),
		Profit:          m.Profit,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// SaleFromEntity converts a domain Sale entity to a SaleModel.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:              sale.ID,
		AnimalID:        sale.AnimalID,
		BuyerName:       sale.BuyerName,
		BuyerContact:    sale.BuyerContact,
		SaleDate:        sale.SaleDate,
		Price:           sale.Price,
		PaymentMethod:   sale.PaymentMethod,
		PaymentReceived: sale.PaymentReceived,
		ReceiptNumber:   sale.ReceiptNumber,
		Purpose:         sale.Purpose,
		Status:          string(sale.Status),
		Profit:          sale.Profit,
		Notes:           sale.Notes,
		CreatedAt:       sale.CreatedAt,
		UpdatedAt:       sale.UpdatedAt,
	}
}
