package animal

import (
	"context"
	"errors"
	"fmt"

	"github.com/goat-farm/backend/internal/application/adapter"
	domainerror "github.com/goat-farm/backend/internal/domain/error"
)

// validateParent checks that a referenced parent exists and that assigning it
// to animalID would not make the animal its own ancestor. animalID is zero
// for a not-yet-persisted animal, which cannot be part of any cycle.
func validateParent(ctx context.Context, repo adapter.AnimalRepository, animalID uint, parentID uint) error {
	if _, err := repo.FindByID(ctx, parentID); err != nil {
		if errors.Is(err, domainerror.ErrAnimalNotFound) {
			return domainerror.NewAnimalError(
				domainerror.ErrCodeParentNotFound,
				fmt.Sprintf("parent animal %d not found", parentID),
				domainerror.ErrParentNotFound,
			)
		}
		return fmt.Errorf("failed to look up parent %d: %w", parentID, err)
	}

	if animalID == 0 {
		return nil
	}

	// Walk the parent chains upward from the candidate parent. Reaching the
	// animal itself means the assignment closes a cycle. The visited set
	// bounds the walk on already-corrupt data.
	visited := map[uint]bool{}
	frontier := []uint{parentID}
	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if current == animalID {
			return domainerror.NewAnimalError(
				domainerror.ErrCodeParentageCycle,
				"parent assignment would create a cycle in the parentage graph",
				domainerror.ErrParentageCycle,
			)
		}
		if visited[current] {
			continue
		}
		visited[current] = true

		ancestor, err := repo.FindByID(ctx, current)
		if err != nil {
			if errors.Is(err, domainerror.ErrAnimalNotFound) {
				continue
			}
			return fmt.Errorf("failed to walk parentage of %d: %w", current, err)
		}
		if ancestor.MotherID != nil {
			frontier = append(frontier, *ancestor.MotherID)
		}
		if ancestor.FatherID != nil {
			frontier = append(frontier, *ancestor.FatherID)
		}
	}

	return nil
}
