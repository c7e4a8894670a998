// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sex represents the sex of an animal.
type Sex string

const (
	SexDoe  Sex = "Doe"
	SexBuck Sex = "Buck"
)

// ParseSex normalizes a raw sex value case-insensitively.
func ParseSex(raw string) (Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "doe", "female":
		return SexDoe, true
	case "buck", "male":
		return SexBuck, true
	}
	return "", false
}

// AnimalStatus represents the lifecycle status of an animal.
type AnimalStatus string

const (
	AnimalStatusActive   AnimalStatus = "Active"
	AnimalStatusSold     AnimalStatus = "Sold"
	AnimalStatusDeceased AnimalStatus = "Deceased"
	AnimalStatusArchived AnimalStatus = "Archived"
)

// ParseAnimalStatus normalizes a raw status value case-insensitively.
func ParseAnimalStatus(raw string) (AnimalStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "active":
		return AnimalStatusActive, true
	case "sold":
		return AnimalStatusSold, true
	case "deceased":
		return AnimalStatusDeceased, true
	case "archived":
		return AnimalStatusArchived, true
	}
	return "", false
}

// Animal represents a single animal in the herd.
type Animal struct {
	ID                uint
	TagID             string
	Breed             string
	Sex               Sex
	BirthDate         *time.Time
	Weight            *float64
	HealthStatus      string
	Notes             string
	Category          string
	Status            AnimalStatus
	AcquisitionDate   *time.Time
	AcquisitionPrice  *decimal.Decimal
	AcquisitionSource string
	MotherID          *uint
	FatherID          *uint
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewAnimal creates a new Animal with default values.
func NewAnimal(tagID, breed string, sex Sex) *Animal {
	now := time.Now().UTC()
	return &Animal{
		TagID:        tagID,
		Breed:        breed,
		Sex:          sex,
		HealthStatus: "Healthy",
		Status:       AnimalStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Age buckets the elapsed time since the birth date into a human-readable
// string: "{n} day(s)" under 30 days, "{n} month(s)" under 365, otherwise
// "{n} year(s)". The month/year figures come from integer division by 30 and
// 365, not calendar arithmetic. Returns nil when no birth date is recorded.
func (a *Animal) Age(today time.Time) *string {
	if a.BirthDate == nil {
		return nil
	}
	days := int(today.Sub(*a.BirthDate).Hours() / 24)
	if days < 0 {
		days = 0
	}

	var age string
	switch {
	case days < 30:
		age = fmt.Sprintf("%d day(s)", days)
	case days < 365:
		age = fmt.Sprintf("%d month(s)", days/30)
	default:
		age = fmt.Sprintf("%d year(s)", days/365)
	}
	return &age
}

// AnimalWithRelations bundles an animal with its owned records and the
// derived fields that depend on other rows.
type AnimalWithRelations struct {
	Animal         *Animal
	Treatments     []*Treatment
	Sale           *Sale
	OffspringCount int64
}
