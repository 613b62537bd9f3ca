package commands

import (
	"errors"

	"orderdelivery/internal/pkg/guard"
)

var ErrRemoveOrphanedProofImagesCommandIsNotConstructed = errors.New(
	"RemoveOrphanedProofImagesCommand must be created via NewRemoveOrphanedProofImagesCommand constructor",
)

// RemoveOrphanedProofImagesCommand triggers a sweep of the proof image store:
// stored images that no proof record references are deleted. Such orphans
// appear when a proof upload writes its blob but the subsequent database
// transaction fails.
type RemoveOrphanedProofImagesCommand struct {
	guard guard.ConstructorGuard
}

// NewRemoveOrphanedProofImagesCommand creates a command to trigger the sweep.
func NewRemoveOrphanedProofImagesCommand() RemoveOrphanedProofImagesCommand {
	return RemoveOrphanedProofImagesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrphanedProofImagesCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrphanedProofImagesCommandIsNotConstructed)
}
