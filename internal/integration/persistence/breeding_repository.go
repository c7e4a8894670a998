package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/goat-farm/backend/internal/application/adapter"
	"github.com/goat-farm/backend/internal/domain/entity"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

// breedingRepository implements the adapter.BreedingRepository interface.
type breedingRepository struct {
	db *gorm.DB
}

// NewBreedingRepository creates a new breeding repository instance.
func NewBreedingRepository(db *gorm.DB) adapter.BreedingRepository {
	return &breedingRepository{
		db: db,
	}
}

// Create creates a new breeding record in the database.
func (r *breedingRepository) Create(ctx context.Context, record *entity.BreedingRecord) error {
	recordModel := model.BreedingRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	record.ID = recordModel.ID
	return nil
}

// FindAll retrieves all breeding records, newest mating date first.
func (r *breedingRepository) FindAll(ctx context.Context) ([]*entity.BreedingRecord, error) {
	var recordModels []model.BreedingRecordModel
	result := r.db.WithContext(ctx).
		Order("mating_date DESC, created_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.BreedingRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToEntity()
	}
	return records, nil
}
