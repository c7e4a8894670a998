package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTreatment_DerivedExpense(t *testing.T) {
	treatmentDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("positive cost produces a linked expense", func(t *testing.T) {
		cost := decimal.RequireFromString("500.00")
		treatment := NewTreatment(42, "Vaccination")
		treatment.TreatmentDate = treatmentDate
		treatment.Medication = "CDT vaccine"
		treatment.Cost = &cost

		expense := treatment.DerivedExpense()
		if expense == nil {
			t.Fatal("expected a derived expense")
		}
		if expense.ExpenseType != ExpenseTypeTreatment {
			t.Errorf("expected type %q, got %q", ExpenseTypeTreatment, expense.ExpenseType)
		}
		if !expense.Amount.Equal(cost) {
			t.Errorf("expected amount %s, got %s", cost, expense.Amount)
		}
		if expense.AnimalID == nil || *expense.AnimalID != 42 {
			t.Errorf("expected animal id 42, got %v", expense.AnimalID)
		}
		if !expense.Date.Equal(treatmentDate) {
			t.Errorf("expected date %s, got %s", treatmentDate, expense.Date)
		}
		if expense.Notes != "Vaccination - CDT vaccine" {
			t.Errorf("unexpected note %q", expense.Notes)
		}
	})

	t.Run("zero cost produces no expense", func(t *testing.T) {
		cost := decimal.Zero
		treatment := NewTreatment(42, "Check-up")
		treatment.Cost = &cost

		if treatment.DerivedExpense() != nil {
			t.Error("expected no derived expense for zero cost")
		}
	})

	t.Run("absent cost produces no expense", func(t *testing.T) {
		treatment := NewTreatment(42, "Deworming")

		if treatment.DerivedExpense() != nil {
			t.Error("expected no derived expense without a cost")
		}
	})

	t.Run("note omits medication when empty", func(t *testing.T) {
		cost := decimal.RequireFromString("75.00")
		treatment := NewTreatment(7, "Surgery")
		treatment.Cost = &cost

		expense := treatment.DerivedExpense()
		if expense == nil {
			t.Fatal("expected a derived expense")
		}
		if expense.Notes != "Surgery" {
			t.Errorf("unexpected note %q", expense.Notes)
		}
	})
}

func TestIsAllowedTreatmentType(t *testing.T) {
	for _, allowed := range AllowedTreatmentTypes {
		if !IsAllowedTreatmentType(allowed) {
			t.Errorf("expected %q to be allowed", allowed)
		}
	}
	if IsAllowedTreatmentType("Acupuncture") {
		t.Error("expected unknown type to be rejected")
	}
}
