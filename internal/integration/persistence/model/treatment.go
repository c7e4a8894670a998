package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// TreatmentModel represents the treatments table in the database.
type TreatmentModel struct {
	ID            uint             `gorm:"primaryKey"`
	AnimalID      uint             `gorm:"not null;index"`
	TreatmentType string           `gorm:"type:varchar(100);not null"`
	Medication    string           `gorm:"type:varchar(100)"`
	Dosage        string           `gorm:"type:varchar(50)"`
	TreatmentDate time.Time        `gorm:"type:date;not null;index"`
	NextDueDate   *time.Time       `gorm:"type:date"`
	Outcome       string           `gorm:"type:varchar(100)"`
	Cost          *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Notes         string           `gorm:"type:text"`
	CreatedAt     time.Time        `gorm:"not null"`
	UpdatedAt     time.Time        `gorm:"not null"`
}

// TableName returns the table name for the TreatmentModel.
func (TreatmentModel) TableName() string {
	return "treatments"
}

// ToEntity converts a TreatmentModel to a domain Treatment entity.
func (m *TreatmentModel) ToEntity() *entity.Treatment {
	return &entity.Treatment{
		ID:            m.ID,
		AnimalID:      m.AnimalID,
		TreatmentType: m.TreatmentType,
		Medication:    m.Medication,
		Dosage:        m.Dosage,
		TreatmentDate: m.TreatmentDate,
		NextDueDate:   m.NextDueDate,
		Outcome:       m.Outcome,
		Cost:          m.Cost,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TreatmentFromEntity converts a domain Treatment entity to a TreatmentModel.
func TreatmentFromEntity(treatment *entity.Treatment) *TreatmentModel {
	return &TreatmentModel{
		ID:            treatment.ID,
		AnimalID:      treatment.AnimalID,
		TreatmentType: treatment.TreatmentType,
		Medication:    treatment.Medication,
		Dosage:        treatment.Dosage,
		TreatmentDate: treatment.TreatmentDate,
		NextDueDate:   treatment.NextDueDate,
		Outcome:       treatment.Outcome,
		Cost:          treatment.Cost,
		Notes:         treatment.Notes,
		CreatedAt:     treatment.CreatedAt,
		UpdatedAt:     treatment.UpdatedAt,
	}
}
