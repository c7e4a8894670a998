// Package animal contains animal-related use cases.
package animal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// AnimalOutput represents an animal in use case outputs, including the
// derived age bucket and offspring count.
type AnimalOutput struct {
	ID                uint
	TagID             string
	Breed             string
	Sex               entity.Sex
	BirthDate         *time.Time
	Age               *string
	Weight            *float64
	HealthStatus      string
	Notes             string
	Category          string
	Status            entity.AnimalStatus
	AcquisitionDate   *time.Time
	AcquisitionPrice  *decimal.Decimal
	AcquisitionSource string
	MotherID          *uint
	FatherID          *uint
	OffspringCount    int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// toAnimalOutput maps an entity to its output representation. The age bucket
// is derived against the current clock.
func toAnimalOutput(animal *entity.Animal, offspringCount int64) *AnimalOutput {
	return &AnimalOutput{
		ID:                animal.ID,
		TagID:             animal.TagID,
		Breed:             animal.Breed,
		Sex:               animal.Sex,
		BirthDate:         animal.BirthDate,
		Age:               animal.Age(time.Now().UTC()),
		Weight:            animal.Weight,
		HealthStatus:      animal.HealthStatus,
		Notes:             animal.Notes,
		Category:          animal.Category,
		Status:            animal.Status,
		AcquisitionDate:   animal.AcquisitionDate,
		AcquisitionPrice:  animal.AcquisitionPrice,
		AcquisitionSource: animal.AcquisitionSource,
		MotherID:          animal.MotherID,
		FatherID:          animal.FatherID,
		OffspringCount:    offspringCount,
		CreatedAt:         animal.CreatedAt,
		UpdatedAt:         animal.UpdatedAt,
	}
}
