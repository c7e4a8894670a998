package animal

import (
	"context"
	"testing"

	"github.com/goat-farm/backend/internal/domain/entity"
)

func findOutputByTag(t *testing.T, outputs []*AnimalOutput, tagID string) *AnimalOutput {
	t.Helper()
	for _, o := range outputs {
		if o.TagID == tagID {
			return o
		}
	}
	t.Fatalf("animal %s not found in output", tagID)
	return nil
}

func TestListAnimalsUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("lists active animals with derived offspring counts", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		mother := repo.mustAdd(t, entity.NewAnimal("M-001", "Boer", entity.SexDoe))
		father := repo.mustAdd(t, entity.NewAnimal("F-001", "Boer", entity.SexBuck))
		kid := entity.NewAnimal("K-001", "Boer", entity.SexDoe)
		kid.MotherID = &mother.ID
		kid.FatherID = &father.ID
		repo.mustAdd(t, kid)
		secondKid := entity.NewAnimal("K-002", "Boer", entity.SexBuck)
		secondKid.MotherID = &mother.ID
		repo.mustAdd(t, secondKid)

		uc := NewListAnimalsUseCase(repo)
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Animals) != 4 {
			t.Fatalf("expected 4 animals, got %d", len(output.Animals))
		}

		if got := findOutputByTag(t, output.Animals, "M-001").OffspringCount; got != 2 {
			t.Errorf("expected mother offspring count 2, got %d", got)
		}
		if got := findOutputByTag(t, output.Animals, "F-001").OffspringCount; got != 1 {
			t.Errorf("expected father offspring count 1, got %d", got)
		}
		if got := findOutputByTag(t, output.Animals, "K-001").OffspringCount; got != 0 {
			t.Errorf("expected kid offspring count 0, got %d", got)
		}
	})

	t.Run("excludes non-active animals", func(t *testing.T) {
		repo := newFakeAnimalRepository()
		repo.mustAdd(t, entity.NewAnimal("G-001", "Boer", entity.SexDoe))
		sold := entity.NewAnimal("G-002", "Boer", entity.SexDoe)
		sold.Status = entity.AnimalStatusSold
		repo.mustAdd(t, sold)

		uc := NewListAnimalsUseCase(repo)
		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Animals) != 1 {
			t.Fatalf("expected 1 animal, got %d", len(output.Animals))
		}
		if output.Animals[0].TagID != "G-001" {
			t.Errorf("expected G-001, got %s", output.Animals[0].TagID)
		}
	})
}

func TestListArchiveUseCase_Execute_OffspringCounts(t *testing.T) {
	ctx := context.Background()

	repo := newFakeAnimalRepository()
	mother := entity.NewAnimal("M-010", "Boer", entity.SexDoe)
	mother.Status = entity.AnimalStatusSold
	repo.mustAdd(t, mother)
	kid := entity.NewAnimal("K-010", "Boer", entity.SexDoe)
	kid.MotherID = &mother.ID
	repo.mustAdd(t, kid)

	uc := NewListArchiveUseCase(repo)
	output, err := uc.Execute(ctx, ListArchiveInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Animals) != 1 {
		t.Fatalf("expected 1 archived animal, got %d", len(output.Animals))
	}
	if output.Animals[0].OffspringCount != 1 {
		t.Errorf("expected archived mother offspring count 1, got %d", output.Animals[0].OffspringCount)
	}
}
