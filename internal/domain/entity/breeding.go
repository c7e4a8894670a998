package entity

import "time"

// GestationDays is the fixed gestation period used to project the expected
// kidding date from the mating date.
const GestationDays = 150

// BreedingRecordStatus for a new record; the original workflow starts every
// record as confirmed.
const BreedingStatusConfirmed = "Confirmed"

// BreedingRecord links a doe and a buck for a single mating.
type BreedingRecord struct {
	ID                  uint
	DoeID               uint
	BuckID              uint
	MatingDate          time.Time
	ExpectedKiddingDate time.Time
	Status              string
	Notes               string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewBreedingRecord creates a breeding record with the expected kidding date
// projected from the mating date.
func NewBreedingRecord(doeID, buckID uint, matingDate time.Time) *BreedingRecord {
	now := time.Now().UTC()
	return &BreedingRecord{
		DoeID:               doeID,
		BuckID:              buckID,
		MatingDate:          matingDate,
		ExpectedKiddingDate: ExpectedKiddingDate(matingDate),
		Status:              BreedingStatusConfirmed,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// ExpectedKiddingDate projects the kidding date from a mating date.
func ExpectedKiddingDate(matingDate time.Time) time.Time {
	return matingDate.AddDate(0, 0, GestationDays)
}
