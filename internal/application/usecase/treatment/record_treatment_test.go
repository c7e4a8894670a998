package treatment

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// fakeTreatmentRepository records treatments and their derived expenses in
// memory, mirroring the transactional pairing of the real repository.
type fakeTreatmentRepository struct {
	treatments map[uint]*entity.Treatment
	expenses   []*entity.Expense
	nextID     uint
}

func newFakeTreatmentRepository() *fakeTreatmentRepository {
	return &fakeTreatmentRepository{treatments: map[uint]*entity.Treatment{}, nextID: 1}
}

func (r *fakeTreatmentRepository) CreateWithExpense(_ context.Context, treatment *entity.Treatment, derivedExpense *entity.Expense) error {
	treatment.ID = r.nextID
	r.nextID++
	copied := *treatment
	r.treatments[treatment.ID] = &copied
	if derivedExpense != nil {
		expense := *derivedExpense
		r.expenses = append(r.expenses, &expense)
	}
	return nil
}

func (r *fakeTreatmentRepository) FindByID(_ context.Context, id uint) (*entity.Treatment, error) {
	treatment, ok := r.treatments[id]
	if !ok {
		return nil, domainerror.ErrTreatmentNotFound
	}
	copied := *treatment
	return &copied, nil
}

func (r *fakeTreatmentRepository) FindAll(_ context.Context) ([]*entity.Treatment, error) {
	result := make([]*entity.Treatment, 0, len(r.treatments))
	for _, t := range r.treatments {
		copied := *t
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeTreatmentRepository) FindByAnimal(_ context.Context, animalID uint) ([]*entity.Treatment, error) {
	var result []*entity.Treatment
	for _, t := range r.treatments {
		if t.AnimalID == animalID {
			copied := *t
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeTreatmentRepository) Update(_ context.Context, treatment *entity.Treatment) error {
	if _, ok := r.treatments[treatment.ID]; !ok {
		return domainerror.ErrTreatmentNotFound
	}
	copied := *treatment
	r.treatments[treatment.ID] = &copied
	return nil
}

func (r *fakeTreatmentRepository) Delete(_ context.Context, id uint) error {
	if _, ok := r.treatments[id]; !ok {
		return domainerror.ErrTreatmentNotFound
	}
	delete(r.treatments, id)
	return nil
}

// fakeAnimalFinder implements only the lookup the treatment use cases need.
type fakeAnimalFinder struct {
	animals map[uint]*entity.Animal
}

func (r *fakeAnimalFinder) Create(context.Context, *entity.Animal) error { return nil }
func (r *fakeAnimalFinder) FindByID(_ context.Context, id uint) (*entity.Animal, error) {
	animal, ok := r.animals[id]
	if !ok {
		return nil, domainerror.ErrAnimalNotFound
	}
	return animal, nil
}
func (r *fakeAnimalFinder) FindByIDWithRelations(context.Context, uint) (*entity.AnimalWithRelations, error) {
	return nil, domainerror.ErrAnimalNotFound
}
func (r *fakeAnimalFinder) FindByStatus(context.Context, entity.AnimalStatus) ([]*entity.Animal, error) {
	return nil, nil
}
func (r *fakeAnimalFinder) FindNotActive(context.Context) ([]*entity.Animal, error) { return nil, nil }
func (r *fakeAnimalFinder) FindAll(context.Context) ([]*entity.Animal, error)       { return nil, nil }
func (r *fakeAnimalFinder) Update(context.Context, *entity.Animal) error            { return nil }
func (r *fakeAnimalFinder) CountOffspring(context.Context, uint) (int64, error)     { return 0, nil }
func (r *fakeAnimalFinder) OffspringCounts(context.Context) (map[uint]int64, error) { return nil, nil }

func seededAnimalFinder() *fakeAnimalFinder {
	animal := entity.NewAnimal("G-001", "Boer", entity.SexDoe)
	animal.ID = 1
	return &fakeAnimalFinder{animals: map[uint]*entity.Animal{1: animal}}
}

func TestRecordTreatmentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("records a treatment without cost and no expense", func(t *testing.T) {
		treatmentRepo := newFakeTreatmentRepository()
		uc := NewRecordTreatmentUseCase(treatmentRepo, seededAnimalFinder())

		output, err := uc.Execute(ctx, RecordTreatmentInput{
			AnimalID:      1,
			TreatmentType: "Vaccination",
			Medication:    "CDT",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ExpenseCreated {
			t.Error("expected no expense without a cost")
		}
		if len(treatmentRepo.expenses) != 0 {
			t.Errorf("expected 0 expenses, got %d", len(treatmentRepo.expenses))
		}
		if output.Treatment.TreatmentType != "Vaccination" {
			t.Errorf("expected type Vaccination, got %s", output.Treatment.TreatmentType)
		}
	})

	t.Run("derives an expense from a positive cost", func(t *testing.T) {
		treatmentRepo := newFakeTreatmentRepository()
		uc := NewRecordTreatmentUseCase(treatmentRepo, seededAnimalFinder())

		cost := decimal.RequireFromString("350.00")
		output, err := uc.Execute(ctx, RecordTreatmentInput{
			AnimalID:      1,
			TreatmentType: "Deworming",
			Medication:    "Ivermectin",
			Cost:          &cost,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.ExpenseCreated {
			t.Fatal("expected a derived expense")
		}
		if len(treatmentRepo.expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(treatmentRepo.expenses))
		}
		expense := treatmentRepo.expenses[0]
		if !expense.Amount.Equal(cost) {
			t.Errorf("expected expense amount %s, got %s", cost, expense.Amount)
		}
		if expense.ExpenseType != entity.ExpenseTypeTreatment {
			t.Errorf("expected expense type %s, got %s", entity.ExpenseTypeTreatment, expense.ExpenseType)
		}
		if expense.Notes != "Deworming - Ivermectin" {
			t.Errorf("unexpected expense note %q", expense.Notes)
		}
	})

	t.Run("skips the expense for a zero cost", func(t *testing.T) {
		treatmentRepo := newFakeTreatmentRepository()
		uc := NewRecordTreatmentUseCase(treatmentRepo, seededAnimalFinder())

		cost := decimal.Zero
		output, err := uc.Execute(ctx, RecordTreatmentInput{
			AnimalID:      1,
			TreatmentType: "Check-up",
			Cost:          &cost,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ExpenseCreated {
			t.Error("expected no expense for zero cost")
		}
	})

	t.Run("rejects a negative cost", func(t *testing.T) {
		treatmentRepo := newFakeTreatmentRepository()
		uc := NewRecordTreatmentUseCase(treatmentRepo, seededAnimalFinder())

		cost := decimal.RequireFromString("-5")
		_, err := uc.Execute(ctx, RecordTreatmentInput{AnimalID: 1, TreatmentType: "Surgery", Cost: &cost})
		if !errors.Is(err, domainerror.ErrInvalidTreatmentCost) {
			t.Fatalf("expected ErrInvalidTreatmentCost, got %v", err)
		}
	})

	t.Run("rejects a type outside the allow-list", func(t *testing.T) {
		uc := NewRecordTreatmentUseCase(newFakeTreatmentRepository(), seededAnimalFinder())

		_, err := uc.Execute(ctx, RecordTreatmentInput{AnimalID: 1, TreatmentType: "Acupuncture"})
		if !errors.Is(err, domainerror.ErrInvalidTreatmentType) {
			t.Fatalf("expected ErrInvalidTreatmentType, got %v", err)
		}
	})

	t.Run("stores the custom type for Other", func(t *testing.T) {
		treatmentRepo := newFakeTreatmentRepository()
		uc := NewRecordTreatmentUseCase(treatmentRepo, seededAnimalFinder())

		output, err := uc.Execute(ctx, RecordTreatmentInput{
			AnimalID:      1,
			TreatmentType: "Other",
			CustomType:    "Hoof trimming",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Treatment.TreatmentType != "Hoof trimming" {
			t.Errorf("expected stored type 'Hoof trimming', got %s", output.Treatment.TreatmentType)
		}
	})

	t.Run("requires a custom type for Other", func(t *testing.T) {
		uc := NewRecordTreatmentUseCase(newFakeTreatmentRepository(), seededAnimalFinder())

		_, err := uc.Execute(ctx, RecordTreatmentInput{AnimalID: 1, TreatmentType: "Other"})
		if !errors.Is(err, domainerror.ErrMissingCustomType) {
			t.Fatalf("expected ErrMissingCustomType, got %v", err)
		}
	})

	t.Run("rejects an unknown animal", func(t *testing.T) {
		uc := NewRecordTreatmentUseCase(newFakeTreatmentRepository(), seededAnimalFinder())

		_, err := uc.Execute(ctx, RecordTreatmentInput{AnimalID: 999, TreatmentType: "Vaccination"})
		if !errors.Is(err, domainerror.ErrAnimalNotFound) {
			t.Fatalf("expected ErrAnimalNotFound, got %v", err)
		}
	})
}
