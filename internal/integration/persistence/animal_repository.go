// Package persistence implements repository interfaces for database operations.
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

// animalRepository implements the adapter.AnimalRepository interface.
type animalRepository struct {
	db *gorm.DB
}

// NewAnimalRepository creates a new animal repository instance.
func NewAnimalRepository(db *gorm.DB) adapter.AnimalRepository {
	return &animalRepository{
		db: db,
	}
}

// Create creates a new animal in the database.
func (r *animalRepository) Create(ctx context.Context, animal *entity.Animal) error {
	animalModel := model.AnimalFromEntity(animal)
	result := r.db.WithContext(ctx).Create(animalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDuplicateTagID
		}
		return result.Error
	}
	animal.ID = animalModel.ID
	return nil
}

// FindByID retrieves an animal by its ID.
func (r *animalRepository) FindByID(ctx context.Context, id uint) (*entity.Animal, error) {
	var animalModel model.AnimalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&animalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAnimalNotFound
		}
		return nil, result.Error
	}
	return animalModel.ToEntity(), nil
}

// FindByIDWithRelations retrieves an animal with its treatments, sale and
// offspring count.
func (r *animalRepository) FindByIDWithRelations(ctx context.Context, id uint) (*entity.AnimalWithRelations, error) {
	var animalModel model.AnimalModel
	result := r.db.WithContext(ctx).
		Preload("Treatments", func(db *gorm.DB) *gorm.DB {
			return db.Order("treatment_date DESC")
		}).
		Preload("Sale").
		Where("id = ?", id).
		First(&animalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAnimalNotFound
		}
		return nil, result.Error
	}

	offspring, err := r.CountOffspring(ctx, id)
	if err != nil {
		return nil, err
	}

	related := &entity.AnimalWithRelations{
		Animal:         animalModel.ToEntity(),
		OffspringCount: offspring,
	}
	for i := range animalModel.Treatments {
		related.Treatments = append(related.Treatments, animalModel.Treatments[i].ToEntity())
	}
	if animalModel.Sale != nil {
		related.Sale = animalModel.Sale.ToEntity()
	}
	return related, nil
}

// FindByStatus retrieves all animals in the given status.
func (r *animalRepository) FindByStatus(ctx context.Context, status entity.AnimalStatus) ([]*entity.Animal, error) {
	var animalModels []model.AnimalModel
	result := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&animalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAnimalEntities(animalModels), nil
}

// FindNotActive retrieves all animals outside the Active status.
func (r *animalRepository) FindNotActive(ctx context.Context) ([]*entity.Animal, error) {
	var animalModels []model.AnimalModel
	result := r.db.WithContext(ctx).
		Where("status <> ?", string(entity.AnimalStatusActive)).
		Order("updated_at DESC").
		Find(&animalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAnimalEntities(animalModels), nil
}

// FindAll retrieves every animal regardless of status.
func (r *animalRepository) FindAll(ctx context.Context) ([]*entity.Animal, error) {
	var animalModels []model.AnimalModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&animalModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toAnimalEntities(animalModels), nil
}

// Update updates an existing animal in the database.
func (r *animalRepository) Update(ctx context.Context, animal *entity.Animal) error {
	animalModel := model.AnimalFromEntity(animal)
	result := r.db.WithContext(ctx).Save(animalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDuplicateTagID
		}
		return result.Error
	}
	return nil
}

// CountOffspring counts animals naming the given animal as mother or father.
func (r *animalRepository) CountOffspring(ctx context.Context, id uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AnimalModel{}).
		Where("mother_id = ? OR father_id = ?", id, id).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// OffspringCounts counts offspring per parent in a single grouped query. An
// animal counts toward both its mother and its father.
func (r *animalRepository) OffspringCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		ParentID uint  `gorm:"column:parent_id"`
		Count    int64 `gorm:"column:count"`
	}
	query := `
		SELECT parent_id, SUM(n) as count FROM (
			SELECT mother_id as parent_id, COUNT(*) as n FROM animals
			WHERE mother_id IS NOT NULL GROUP BY mother_id
			UNION ALL
			SELECT father_id as parent_id, COUNT(*) as n FROM animals
			WHERE father_id IS NOT NULL GROUP BY father_id
		) as parents
		GROUP BY parent_id
	`
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ParentID] = row.Count
	}
	return counts, nil
}

func toAnimalEntities(animalModels []model.AnimalModel) []*entity.Animal {
	animals := make([]*entity.Animal, len(animalModels))
	for i := range animalModels {
		animals[i] = animalModels[i].ToEntity()
	}
	return animals
}
