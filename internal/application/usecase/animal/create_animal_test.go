package animal

import (
	"context"
	"errors"
	"testing"

	"github.com/goat-farm/backend/internal/domain/entity"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// fakeAnimalRepository is an in-memory AnimalRepository for use case tests.
type fakeAnimalRepository struct {
	animals      map[uint]*entity.Animal
	nextID       uint
	offspringErr error
}

func newFakeAnimalRepository() *fakeAnimalRepository {
	return &fakeAnimalRepository{animals: map[uint]*entity.Animal{}, nextID: 1}
}

func (r *fakeAnimalRepository) Create(_ context.Context, animal *entity.Animal) error {
	for _, existing := range r.animals {
		if existing.TagID == animal.TagID {
			return domainerror.ErrDuplicateTagID
		}
	}
	animal.ID = r.nextID
	r.nextID++
	copied := *animal
	r.animals[animal.ID] = &copied
	return nil
}

func (r *fakeAnimalRepository) FindByID(_ context.Context, id uint) (*entity.Animal, error) {
	animal, ok := r.animals[id]
	if !ok {
		return nil, domainerror.ErrAnimalNotFound
	}
	copied := *animal
	return &copied, nil
}

func (r *fakeAnimalRepository) FindByIDWithRelations(ctx context.Context, id uint) (*entity.AnimalWithRelations, error) {
	animal, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.AnimalWithRelations{Animal: animal}, nil
}

func (r *fakeAnimalRepository) FindByStatus(_ context.Context, status entity.AnimalStatus) ([]*entity.Animal, error) {
	var result []*entity.Animal
	for _, a := range r.animals {
		if a.Status == status {
			copied := *a
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeAnimalRepository) FindNotActive(_ context.Context) ([]*entity.Animal, error) {
	var result []*entity.Animal
	for _, a := range r.animals {
		if a.Status != entity.AnimalStatusActive {
			copied := *a
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeAnimalRepository) FindAll(_ context.Context) ([]*entity.Animal, error) {
	result := make([]*entity.Animal, 0, len(r.animals))
	for _, a := range r.animals {
		copied := *a
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeAnimalRepository) Update(_ context.Context, animal *entity.Animal) error {
	if _, ok := r.animals[animal.ID]; !ok {
		return domainerror.ErrAnimalNotFound
	}
	for _, existing := range r.animals {
		if existing.ID != animal.ID && existing.TagID == animal.TagID {
			return domainerror.ErrDuplicateTagID
		}
	}
	copied := *animal
	r.animals[animal.ID] = &copied
	return nil
}

func (r *fakeAnimalRepository) CountOffspring(_ context.Context, id uint) (int64, error) {
	if r.offspringErr != nil {
		return 0, r.offspringErr
	}
	var count int64
	for _, a := range r.animals {
		if (a.MotherID != nil && *a.MotherID == id) || (a.FatherID != nil && *a.FatherID == id) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAnimalRepository) OffspringCounts(_ context.Context) (map[uint]int64, error) {
	if r.offspringErr != nil {
		return nil, r.offspringErr
	}
	counts := map[uint]int64{}
	for _, a := range r.animals {
		if a.MotherID != nil {
			counts[*a.MotherID]++
		}
		if a.FatherID != nil {
			counts[*a.FatherID]++
		}
	}
	return counts, nil
}

func (r *fakeAnimalRepository) mustAdd(t *testing.T, animal *entity.Animal) *entity.Animal {
	t.Helper()
	if err := r.Create(context.Background(), animal); err != nil {
		t.Fatalf("failed to seed animal: %v", err)
	}
	return animal
}

func TestCreateAnimalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active animal with defaults", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		uc := NewCreateAnimalUseCase(repo)

		output, err := uc.Execute(ctx, CreateAnimalInput{
			TagID: "G-001",
			Breed: "Boer",
			Sex:   "doe",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Animal.ID == 0 {
			t.Error("expected animal to receive an id")
		}
		if output.Animal.Sex != entity.SexDoe {
			t.Errorf("expected sex %s, got %s", entity.SexDoe, output.Animal.Sex)
		}
		if output.Animal.Status != entity.AnimalStatusActive {
			t.Errorf("expected status %s, got %s", entity.AnimalStatusActive, output.Animal.Status)
		}
		if output.Animal.HealthStatus != "Healthy" {
			t.Errorf("expected default health status Healthy, got %s", output.Animal.HealthStatus)
		}
	})

	t.Run("rejects unknown sex", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		uc := NewCreateAnimalUseCase(repo)

		_, err := uc.Execute(ctx, CreateAnimalInput{TagID: "G-002", Breed: "Boer", Sex: "wether"})
		if !errors.Is(err, domainerror.ErrInvalidSex) {
			t.Fatalf("expected ErrInvalidSex, got %v", err)
		}
	})

	t.Run("rejects duplicate tag id", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		repo.mustAdd(t, entity.NewAnimal("G-003", "Boer", entity.SexDoe))
		uc := NewCreateAnimalUseCase(repo)

		_, err := uc.Execute(ctx, CreateAnimalInput{TagID: "G-003", Breed: "Kiko", Sex: "buck"})
		if !errors.Is(err, domainerror.ErrDuplicateTagID) {
			t.Fatalf("expected ErrDuplicateTagID, got %v", err)
		}
		var animalErr *domainerror.AnimalError
		if !errors.As(err, &animalErr) {
			t.Fatalf("expected AnimalError, got %T", err)
		}
		if animalErr.Code != domainerror.ErrCodeDuplicateTagID {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDuplicateTagID, animalErr.Code)
		}
	})

	t.Run("rejects missing parent", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		uc := NewCreateAnimalUseCase(repo)

		motherID := uint(42)
		_, err := uc.Execute(ctx, CreateAnimalInput{TagID: "G-004", Breed: "Boer", Sex: "doe", MotherID: &motherID})
		if !errors.Is(err, domainerror.ErrParentNotFound) {
			t.Fatalf("expected ErrParentNotFound, got %v", err)
		}
	})

	t.Run("accepts existing parents", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		mother := repo.mustAdd(t, entity.NewAnimal("M-001", "Boer", entity.SexDoe))
		father := repo.mustAdd(t, entity.NewAnimal("F-001", "Boer", entity.SexBuck))
		uc := NewCreateAnimalUseCase(repo)

		output, err := uc.Execute(ctx, CreateAnimalInput{
			TagID:    "K-001",
			Breed:    "Boer",
			Sex:      "doe",
			MotherID: &mother.ID,
			FatherID: &father.ID,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Animal.MotherID == nil || *output.Animal.MotherID != mother.ID {
			t.Error("expected mother id to be recorded")
		}
	})
}

func TestUpdateAnimalUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("applies only supplied fields", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		seeded := repo.mustAdd(t, entity.NewAnimal("G-010", "Boer", entity.SexDoe))
		uc := NewUpdateAnimalUseCase(repo)

		weight := 48.5
		output, err := uc.Execute(ctx, UpdateAnimalInput{AnimalID: seeded.ID, Weight: &weight})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Animal.Weight == nil || *output.Animal.Weight != weight {
			t.Error("expected weight to be updated")
		}
		if output.Animal.Breed != "Boer" {
			t.Errorf("expected breed to be untouched, got %s", output.Animal.Breed)
		}
	})

	t.Run("normalizes status updates", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		seeded := repo.mustAdd(t, entity.NewAnimal("G-011", "Boer", entity.SexDoe))
		uc := NewUpdateAnimalUseCase(repo)

		status := "deceased"
		output, err := uc.Execute(ctx, UpdateAnimalInput{AnimalID: seeded.ID, Status: &status})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Animal.Status != entity.AnimalStatusDeceased {
			t.Errorf("expected status %s, got %s", entity.AnimalStatusDeceased, output.Animal.Status)
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		seeded := repo.mustAdd(t, entity.NewAnimal("G-012", "Boer", entity.SexDoe))
		uc := NewUpdateAnimalUseCase(repo)

		status := "retired"
		_, err := uc.Execute(ctx, UpdateAnimalInput{AnimalID: seeded.ID, Status: &status})
		if !errors.Is(err, domainerror.ErrInvalidAnimalStatus) {
			t.Fatalf("expected ErrInvalidAnimalStatus, got %v", err)
		}
	})

	t.Run("returns not found for unknown animal", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		uc := NewUpdateAnimalUseCase(repo)

		_, err := uc.Execute(ctx, UpdateAnimalInput{AnimalID: 99})
		if !errors.Is(err, domainerror.ErrAnimalNotFound) {
			t.Fatalf("expected ErrAnimalNotFound, got %v", err)
		}
	})

	t.Run("surfaces an offspring count failure", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		seeded := repo.mustAdd(t, entity.NewAnimal("G-013", "Boer", entity.SexDoe))
		repo.offspringErr = errors.New("connection reset")
		uc := NewUpdateAnimalUseCase(repo)

		notes := "weighed today"
		_, err := uc.Execute(ctx, UpdateAnimalInput{AnimalID: seeded.ID, Notes: &notes})
		if err == nil || !errors.Is(err, repo.offspringErr) {
			t.Fatalf("expected offspring count error to propagate, got %v", err)
		}
	})

	t.Run("rejects a parent assignment that closes a cycle", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		grandmother := repo.mustAdd(t, entity.NewAnimal("G-020", "Boer", entity.SexDoe))
		mother := entity.NewAnimal("G-021", "Boer", entity.SexDoe)
		mother.MotherID = &grandmother.ID
		repo.mustAdd(t, mother)
		kid := entity.NewAnimal("G-022", "Boer", entity.SexDoe)
		kid.MotherID = &mother.ID
		repo.mustAdd(t, kid)

		uc := NewUpdateAnimalUseCase(repo)

		// Pointing the grandmother at her own grandchild closes a loop.
		_, err := uc.Execute(ctx, UpdateAnimalInput{AnimalID: grandmother.ID, MotherID: &kid.ID})
		if !errors.Is(err, domainerror.ErrParentageCycle) {
			t.Fatalf("expected ErrParentageCycle, got %v", err)
		}
	})
}
