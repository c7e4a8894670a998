package model

import (
	"time"

	"github.com/goat-farm/backend/internal/domain/entity"
)

// BreedingRecordModel represents the breeding_records table in the database.
type BreedingRecordModel struct {
	ID                  uint      `gorm:"primaryKey"`
	DoeID               uint      `gorm:"not null;index"`
	BuckID              uint      `gorm:"not null;index"`
	MatingDate          time.Time `gorm:"type:date;not null;index"`
	ExpectedKiddingDate time.Time `gorm:"type:date;not null"`
	Status              string    `gorm:"type:varchar(20);not null"`
	Notes               string    `gorm:"type:text"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName returns the table name for the BreedingRecordModel.
func (BreedingRecordModel) TableName() string {
	return "breeding_records"
}

// ToEntity converts a BreedingRecordModel to a domain BreedingRecord entity.
func (m *BreedingRecordModel) ToEntity() *entity.BreedingRecord {
	return &entity.BreedingRecord{
		ID:                  m.ID,
		DoeID:               m.DoeID,
		BuckID:              m.BuckID,
		MatingDate:          m.MatingDate,
		ExpectedKiddingDate: m.ExpectedKiddingDate,
		Status:              m.Status,
		Notes:               m.Notes,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// BreedingRecordFromEntity converts a domain BreedingRecord entity to a model.
func BreedingRecordFromEntity(record *entity.BreedingRecord) *BreedingRecordModel {
	return &BreedingRecordModel{
		ID:                  record.ID,
		DoeID:               record.DoeID,
		BuckID:              record.BuckID,
		MatingDate:          record.MatingDate,
		ExpectedKiddingDate: record.ExpectedKiddingDate,
		Status:              record.Status,
		Notes:               record.Notes,
		CreatedAt:           record.CreatedAt,
		UpdatedAt:           record.UpdatedAt,
	}
}
