package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// RecordSale persists the sale, derives the receipt number from the assigned
// id, freezes the profit figure and flips the animal to Sold, all in one
// transaction. The status flip is a conditional update; zero affected rows
// means a concurrent sale won and the whole transaction rolls back.
func (r *saleRepository) RecordSale(ctx context.Context, sale *entity.Sale) (*entity.Sale, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var animalModel model.AnimalModel
		if err := tx.Where("id = ?", sale.AnimalID).First(&animalModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrAnimalNotFound
			}
			return err
		}
		if animalModel.Status == string(entity.AnimalStatusSold) {
			return domainerror.ErrAnimalAlreadySold
		}

		var linked struct {
			Total decimal.Decimal `gorm:"column:total"`
		}
		expenseQuery := `
			SELECT COALESCE(SUM(amount), 0) as total
			FROM expenses
			WHERE animal_id = ?
		`
		if err := tx.Raw(expenseQuery, sale.AnimalID).Scan(&linked).Error; err != nil {
			return fmt.Errorf("failed to sum linked expenses: %w", err)
		}

		sale.Profit = entity.SaleProfit(sale.Price, animalModel.ToEntity().AcquisitionPrice, linked.Total)

		saleModel := model.SaleFromEntity(sale)
		if err := tx.Create(saleModel).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domainerror.ErrAnimalAlreadySold
			}
			return err
		}
		sale.ID = saleModel.ID
		sale.ReceiptNumber = entity.ReceiptNumber(saleModel.ID)

		if err := tx.Model(&model.SaleModel{}).
			Where("id = ?", saleModel.ID).
			Update("receipt_number", sale.ReceiptNumber).Error; err != nil {
			return err
		}

		flip := tx.Model(&model.AnimalModel{}).
			Where("id = ? AND status <> ?", sale.AnimalID, string(entity.AnimalStatusSold)).
			Update("status", string(entity.AnimalStatusSold))
		if flip.Error != nil {
			return flip.Error
		}
		if flip.RowsAffected == 0 {
			return domainerror.ErrAnimalAlreadySold
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// FindByID retrieves a sale by its ID.
func (r *saleRepository) FindByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// FindAll retrieves all sales, newest sale date first.
func (r *saleRepository) FindAll(ctx context.Context) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Order("sale_date DESC, created_at DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

// FindRecent retrieves the most recent sales by sale date.
func (r *saleRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Order("sale_date DESC, created_at DESC").
		Limit(limit).
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

// FindByAnimal retrieves all sales recorded for one animal.
func (r *saleRepository) FindByAnimal(ctx context.Context, animalID uint) ([]*entity.Sale, error) {
	var saleModels []model.SaleModel
	result := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("sale_date DESC").
		Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

// FindByFilter retrieves sales matching every present predicate.
func (r *saleRepository) FindByFilter(ctx context.Context, filter adapter.SaleFilter) ([]*entity.Sale, error) {
	query := r.db.WithContext(ctx).Model(&model.SaleModel{})

	if filter.BuyerName != "" {
		query = query.Where("LOWER(buyer_name) LIKE ?", "%"+strings.ToLower(filter.BuyerName)+"%")
	}
	if filter.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *filter.PaymentMethod)
	}
	if filter.Purpose != nil {
		query = query.Where("purpose = ?", *filter.Purpose)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.StartDate != nil {
		query = query.Where("sale_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("sale_date <= ?", *filter.EndDate)
	}

	var saleModels []model.SaleModel
	result := query.Order("sale_date DESC, created_at DESC").Find(&saleModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toSaleEntities(saleModels), nil
}

// TotalPrice sums the price of every sale.
func (r *saleRepository) TotalPrice(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	query := `SELECT COALESCE(SUM(price), 0) as total FROM sales`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to total sales: %w", err)
	}
	return row.Total, nil
}

// TotalPriceByAnimal sums the price of one animal's sales.
func (r *saleRepository) TotalPriceByAnimal(ctx context.Context, animalID uint) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	query := `SELECT COALESCE(SUM(price), 0) as total FROM sales WHERE animal_id = ?`
	if err := r.db.WithContext(ctx).Raw(query, animalID).Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to total animal sales: %w", err)
	}
	return row.Total, nil
}

// ProfitSummary sums frozen profit over the trailing 30 days, the current
// calendar year and all time.
func (r *saleRepository) ProfitSummary(ctx context.Context, now time.Time) (*adapter.ProfitSummary, error) {
	var row struct {
		Last30Days  decimal.Decimal `gorm:"column:last_30_days"`
		CurrentYear decimal.Decimal `gorm:"column:current_year"`
		Lifetime    decimal.Decimal `gorm:"column:lifetime"`
	}
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN sale_date >= ? THEN profit ELSE 0 END), 0) as last_30_days,
			COALESCE(SUM(CASE WHEN sale_date >= ? THEN profit ELSE 0 END), 0) as current_year,
			COALESCE(SUM(profit), 0) as lifetime
		FROM sales
	`
	windowStart := now.AddDate(0, 0, -30)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	if err := r.db.WithContext(ctx).Raw(query, windowStart, yearStart).Scan(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to summarize profit: %w", err)
	}

	return &adapter.ProfitSummary{
		Last30Days:  row.Last30Days,
		CurrentYear: row.CurrentYear,
		Lifetime:    row.Lifetime,
	}, nil
}

// Update updates an existing sale in the database.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	saleModel := model.SaleFromEntity(sale)
	result := r.db.WithContext(ctx).Save(saleModel)
	return result.Error
}

func toSaleEntities(saleModels []model.SaleModel) []*entity.Sale {
	sales := make([]*entity.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToEntity()
	}
	return sales
}
