// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// AnimalModel represents the animals table in the database.
type AnimalModel struct {
	ID                uint             `gorm:"primaryKey"`
	TagID             string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	Breed             string           `gorm:"type:varchar(100);not null"`
	Sex               string           `gorm:"type:varchar(10);not null"`
	BirthDate         *time.Time       `gorm:"type:date"`
	Weight            *float64         `gorm:"type:numeric(6,2)"`
	HealthStatus      string           `gorm:"type:varchar(50);not null;default:Healthy"`
	Notes             string           `gorm:"type:text"`
	Category          string           `gorm:"type:varchar(50);index"`
	Status            string           `gorm:"type:varchar(20);not null;default:Active;index"`
	AcquisitionDate   *time.Time       `gorm:"type:date"`
	AcquisitionPrice  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	AcquisitionSource string           `gorm:"type:varchar(100)"`
	MotherID          *uint            `gorm:"index"`
	FatherID          *uint            `gorm:"index"`
	CreatedAt         time.Time        `gorm:"not null"`
	UpdatedAt         time.Time        `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Treatments []TreatmentModel `gorm:"foreignKey:AnimalID;references:ID"`
	Sale       *SaleModel       `gorm:"foreignKey:AnimalID;references:ID"`
}

// TableName returns the table name for the AnimalModel.
func (AnimalModel) TableName() string {
	return "animals"
}

// ToEntity converts an AnimalModel to a domain Animal entity.
func (m *AnimalModel) ToEntity() *entity.Animal {
	return &entity.Animal{
		ID:                m.ID,
		TagID:             m.TagID,
		Breed:             m.Breed,
		Sex:               entity.Sex(m.Sex),
		BirthDate:         m.BirthDate,
		Weight:            m.Weight,
		HealthStatus:      m.HealthStatus,
		Notes:             m.Notes,
		Category:          m.Category,
		Status:            entity.AnimalStatus(m.Status),
		AcquisitionDate:   m.AcquisitionDate,
		AcquisitionPrice:  m.AcquisitionPrice,
		AcquisitionSource: m.AcquisitionSource,
		MotherID:          m.MotherID,
		FatherID:          m.FatherID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// AnimalFromEntity converts a domain Animal entity to an AnimalModel.
func AnimalFromEntity(animal *entity.Animal) *AnimalModel {
	return &AnimalModel{
		ID:                animal.ID,
		TagID:             animal.TagID,
		Breed:             animal.Breed,
		Sex:               string(animal.Sex),
		BirthDate:         animal.BirthDate,
		Weight:            animal.Weight,
		HealthStatus:      animal.HealthStatus,
		Notes:             animal.Notes,
		Category:          animal.Category,
		Status:            string(animal.Status),
		AcquisitionDate:   animal.AcquisitionDate,
		AcquisitionPrice:  animal.AcquisitionPrice,
		AcquisitionSource: animal.AcquisitionSource,
		MotherID:          animal.MotherID,
		FatherID:          animal.FatherID,
		CreatedAt:         animal.CreatedAt,
		UpdatedAt:         animal.UpdatedAt,
	}
}
