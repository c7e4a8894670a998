package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

// treatmentRepository implements the adapter.TreatmentRepository interface.
type treatmentRepository struct {
	db *gorm.DB
}

// NewTreatmentRepository creates a new treatment repository instance.
func NewTreatmentRepository(db *gorm.DB) adapter.TreatmentRepository {
	return &treatmentRepository{
		db: db,
	}
}

// CreateWithExpense creates the treatment and its derived expense in one
// transaction so the cost never appears without its financial record.
func (r *treatmentRepository) CreateWithExpense(ctx context.Context, treatment *entity.Treatment, derivedExpense *entity.Expense) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		treatmentModel := model.TreatmentFromEntity(treatment)
		if err := tx.Create(treatmentModel).Error; err != nil {
			return err
		}
		treatment.ID = treatmentModel.ID

		if derivedExpense != nil {
			expenseModel := model.ExpenseFromEntity(derivedExpense)
			if err := tx.Create(expenseModel).Error; err != nil {
				return err
			}
			derivedExpense.ID = expenseModel.ID
		}
		return nil
	})
}

// FindByID retrieves a treatment by its ID.
func (r *treatmentRepository) FindByID(ctx context.Context, id uint) (*entity.Treatment, error) {
	var treatmentModel model.TreatmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&treatmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTreatmentNotFound
		}
		return nil, result.Error
	}
	return treatmentModel.ToEntity(), nil
}

// FindAll retrieves all treatments, newest treatment date first.
func (r *treatmentRepository) FindAll(ctx context.Context) ([]*entity.Treatment, error) {
	var treatmentModels []model.TreatmentModel
	result := r.db.WithContext(ctx).
		Order("treatment_date DESC, created_at DESC").
		Find(&treatmentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTreatmentEntities(treatmentModels), nil
}

// FindByAnimal retrieves all treatments for one animal.
func (r *treatmentRepository) FindByAnimal(ctx context.Context, animalID uint) ([]*entity.Treatment, error) {
	var treatmentModels []model.TreatmentModel
	result := r.db.WithContext(ctx).
		Where("animal_id = ?", animalID).
		Order("treatment_date DESC, created_at DESC").
		Find(&treatmentModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTreatmentEntities(treatmentModels), nil
}

// Update updates an existing treatment in the database.
func (r *treatmentRepository) Update(ctx context.Context, treatment *entity.Treatment) error {
	treatmentModel := model.TreatmentFromEntity(treatment)
	result := r.db.WithContext(ctx).Save(treatmentModel)
	return result.Error
}

// Delete removes a treatment from the database.
func (r *treatmentRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.TreatmentModel{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTreatmentNotFound
	}
	return nil
}

func toTreatmentEntities(treatmentModels []model.TreatmentModel) []*entity.Treatment {
	treatments := make([]*entity.Treatment, len(treatmentModels))
	for i := range treatmentModels {
		treatments[i] = treatmentModels[i].ToEntity()
	}
	return treatments
}
