package breeding

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

type fakeBreedingRepository struct {
	records []*entity.BreedingRecord
	nextID  uint
}

func (r *fakeBreedingRepository) Create(_ context.Context, record *entity.BreedingRecord) error {
	r.nextID++
	record.ID = r.nextID
	copied := *record
	r.records = append(r.records, &copied)
	return nil
}

func (r *fakeBreedingRepository) FindAll(_ context.Context) ([]*entity.BreedingRecord, error) {
	result := make([]*entity.BreedingRecord, 0, len(r.records))
	for _, rec := range r.records {
		copied := *rec
		result = append(result, &copied)
	}
	return result, nil
}

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

func breedingHerd() *fakeAnimalFinder {
	doe := entity.NewAnimal("D-001", "Boer", entity.SexDoe)
	doe.ID = 1
	buck := entity.NewAnimal("B-001", "Kiko", entity.SexBuck)
	buck.ID = 2
	return &fakeAnimalFinder{animals: map[uint]*entity.Animal{1: doe, 2: buck}}
}

func TestCreateBreedingRecordUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	mating := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates a record with projected kidding date", func(t *testing.T) {
		repo := &fakeBreedingRepository{}
		uc := NewCreateBreedingRecordUseCase(repo, breedingHerd())

		output, err := uc.Execute(ctx, CreateBreedingRecordInput{DoeID: 1, BuckID: 2, MatingDate: mating})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		if !output.Record.ExpectedKiddingDate.Equal(want) {
			t.Errorf("expected kidding date %s, got %s", want, output.Record.ExpectedKiddingDate)
		}
		if output.Record.Status != entity.BreedingStatusConfirmed {
			t.Errorf("expected status %s, got %s", entity.BreedingStatusConfirmed, output.Record.Status)
		}
	})

	t.Run("rejects a missing animal", func(t *testing.T) {
		uc := NewCreateBreedingRecordUseCase(&fakeBreedingRepository{}, breedingHerd())

		_, err := uc.Execute(ctx, CreateBreedingRecordInput{DoeID: 9, BuckID: 2, MatingDate: mating})
		if !errors.Is(err, domainerror.ErrBreedingAnimalNotFound) {
			t.Fatalf("expected ErrBreedingAnimalNotFound, got %v", err)
		}
	})

	t.Run("rejects a buck in the doe role", func(t *testing.T) {
		uc := NewCreateBreedingRecordUseCase(&fakeBreedingRepository{}, breedingHerd())

		_, err := uc.Execute(ctx, CreateBreedingRecordInput{DoeID: 2, BuckID: 2, MatingDate: mating})
		if !errors.Is(err, domainerror.ErrNotADoe) {
			t.Fatalf("expected ErrNotADoe, got %v", err)
		}
	})

	t.Run("rejects a doe in the buck role", func(t *testing.T) {
		uc := NewCreateBreedingRecordUseCase(&fakeBreedingRepository{}, breedingHerd())

		_, err := uc.Execute(ctx, CreateBreedingRecordInput{DoeID: 1, BuckID: 1, MatingDate: mating})
		if !errors.Is(err, domainerror.ErrNotABuck) {
			t.Fatalf("expected ErrNotABuck, got %v", err)
		}
	})
}
