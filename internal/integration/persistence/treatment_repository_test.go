package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
	"github.com/goat-farm/backend/internal/integration/persistence/model"
)

func TestTreatmentRepository_CreateWithExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("persists treatment and derived expense together", func(t *testing.T) {
		db := newTestDB(t)
		animal := seedAnimal(t, db, "G-001", nil)
		repo := NewTreatmentRepository(db)

		cost := decimal.RequireFromString("350.00")
		treatment := entity.NewTreatment(animal.ID, "Deworming")
		treatment.Medication = "Ivermectin"
		treatment.Cost = &cost

		if err := repo.CreateWithExpense(ctx, treatment, treatment.DerivedExpense()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if treatment.ID == 0 {
			t.Fatal("expected an assigned treatment id")
		}

		var expenses []model.ExpenseModel
		if err := db.Find(&expenses).Error; err != nil {
			t.Fatalf("failed to load expenses: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(expenses))
		}
		if !expenses[0].Amount.Equal(cost) {
			t.Errorf("expected expense amount %s, got %s", cost, expenses[0].Amount)
		}
		if expenses[0].ExpenseType != entity.ExpenseTypeTreatment {
			t.Errorf("expected expense type %s, got %s", entity.ExpenseTypeTreatment, expenses[0].ExpenseType)
		}
		if expenses[0].Notes != "Deworming - Ivermectin" {
			t.Errorf("unexpected expense note %q", expenses[0].Notes)
		}
		if expenses[0].AnimalID == nil || *expenses[0].AnimalID != animal.ID {
			t.Error("expected expense linked to the treated animal")
		}
	})

	t.Run("writes no expense when none is derived", func(t *testing.T) {
		db := newTestDB(t)
		animal := seedAnimal(t, db, "G-002", nil)
		repo := NewTreatmentRepository(db)

		treatment := entity.NewTreatment(animal.ID, "Check-up")
		if err := repo.CreateWithExpense(ctx, treatment, treatment.DerivedExpense()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var count int64
		if err := db.Model(&model.ExpenseModel{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count expenses: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 expenses, got %d", count)
		}
	})
}

func TestTreatmentRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	animal := seedAnimal(t, db, "G-003", nil)
	repo := NewTreatmentRepository(db)

	treatment := entity.NewTreatment(animal.ID, "Vaccination")
	if err := repo.CreateWithExpense(ctx, treatment, nil); err != nil {
		t.Fatalf("failed to seed treatment: %v", err)
	}

	if err := repo.Delete(ctx, treatment.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, treatment.ID); !errors.Is(err, domainerror.ErrTreatmentNotFound) {
		t.Fatalf("expected ErrTreatmentNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, treatment.ID); !errors.Is(err, domainerror.ErrTreatmentNotFound) {
		t.Fatalf("expected ErrTreatmentNotFound on double delete, got %v", err)
	}
}

func TestExpenseRepository_Totals(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	now := entity.NewExpense("Feed", decimal.Zero).Date

	add := func(t *testing.T, amount string, daysAgo int) {
		t.Helper()
		expense := entity.NewExpense("Feed", decimal.RequireFromString(amount))
		expense.Date = now.AddDate(0, 0, -daysAgo)
		if err := repo.Create(ctx, expense); err != nil {
			t.Fatalf("failed to seed expense: %v", err)
		}
	}

	add(t, "100", 0)
	add(t, "200", 29)
	add(t, "400", 45)

	totals, err := repo.Totals(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := decimal.RequireFromString("300"); !totals.Last30Days.Equal(want) {
		t.Errorf("expected last 30 days %s, got %s", want, totals.Last30Days)
	}
	if want := decimal.RequireFromString("700"); !totals.AllTime.Equal(want) {
		t.Errorf("expected all time %s, got %s", want, totals.AllTime)
	}
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := entity.NewUser("Amina", "amina@farm.example", "hash", false)
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := repo.Create(ctx, entity.NewUser("Other", "amina@farm.example", "hash2", false))
	if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}

	found, err := repo.FindByEmail(ctx, "amina@farm.example")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected user id %d, got %d", user.ID, found.ID)
	}
}
