package commands

import (
	"context"
	"time"

	"orderdelivery/internal/core/ports"
)

// RemoveOrphanedProofImagesCommandHandler reclaims proof image blobs that no
// database record references. A grace period protects uploads that are still
// in flight: only images older than the grace period are eligible.
type RemoveOrphanedProofImagesCommandHandler struct {
	uowFactory  ProofUoWFactory
	imageStore  ports.ProofImageStore
	gracePeriod time.Duration
}

// NewRemoveOrphanedProofImagesCommandHandler creates a handler for the
// orphan sweep.
func NewRemoveOrphanedProofImagesCommandHandler(
	uowFactory ProofUoWFactory,
	imageStore ports.ProofImageStore,
	gracePeriod time.Duration,
) RemoveOrphanedProofImagesCommandHandler {
	return RemoveOrphanedProofImagesCommandHandler{
		uowFactory:  uowFactory,
		imageStore:  imageStore,
		gracePeriod: gracePeriod,
	}
}

// Handle runs one sweep and returns the number of removed images.
// The sweep only reads from the database, so no transaction is opened.
func (h RemoveOrphanedProofImagesCommandHandler) Handle(ctx context.Context, cmd RemoveOrphanedProofImagesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()

	refs, err := uow.ProofRepository().GetAllImageRefs(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		referenced[ref] = struct{}{}
	}

	stored, err := h.imageStore.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-h.gracePeriod)
	removed := 0
	for _, image := range stored {
		if _, ok := referenced[image.Ref]; ok {
			continue
		}
		if image.ModTime.After(cutoff) {
			continue
		}

		if err := h.imageStore.Remove(ctx, image.Ref); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
