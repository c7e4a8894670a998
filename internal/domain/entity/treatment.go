package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TreatmentTypeOther marks a treatment whose concrete type is supplied as a
// custom description by the caller.
const TreatmentTypeOther = "Other"

// AllowedTreatmentTypes is the fixed allow-list for treatment types.
var AllowedTreatmentTypes = []string{
	"Vaccination",
	"Deworming",
	"Antibiotic",
	"Check-up",
	"Surgery",
	"Vitamin Supplement",
	TreatmentTypeOther,
}

// IsAllowedTreatmentType reports whether the given type is in the allow-list.
func IsAllowedTreatmentType(treatmentType string) bool {
	for _, t := range AllowedTreatmentTypes {
		if t == treatmentType {
			return true
		}
	}
	return false
}

// Treatment represents a medical treatment applied to an animal.
type Treatment struct {
	ID            uint
	AnimalID      uint
	TreatmentType string
	Medication    string
	Dosage        string
	TreatmentDate time.Time
	NextDueDate   *time.Time
	Outcome       string
	Cost          *decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTreatment creates a new Treatment dated today by default.
func NewTreatment(animalID uint, treatmentType string) *Treatment {
	now := time.Now().UTC()
	return &Treatment{
		AnimalID:      animalID,
		TreatmentType: treatmentType,
		TreatmentDate: now.Truncate(24 * time.Hour),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DerivedExpense builds the Expense record implied by a treatment with a
// positive cost: same animal, same date, amount equal to the cost, with a
// note combining treatment type and medication. Returns nil when the cost is
// absent or not positive, in which case no expense must be created.
func (t *Treatment) DerivedExpense() *Expense {
	if t.Cost == nil || !t.Cost.IsPositive() {
		return nil
	}

	note := t.TreatmentType
	if t.Medication != "" {
		note += " - " + t.Medication
	}

	expense := NewExpense(ExpenseTypeTreatment, *t.Cost)
	expense.Date = t.TreatmentDate
	expense.AnimalID = &t.AnimalID
	expense.Notes = note
	return expense
}

// NormalizeTreatmentType trims the incoming value; matching against the
// allow-list is exact after trimming.
func NormalizeTreatmentType(raw string) string {
	return strings.TrimSpace(raw)
}
