package ports

import (
	"context"

	"orderdelivery/internal/core/domain/model/proof"
)

// ProofRepository persists proof-of-delivery records. Records are append-only.
type ProofRepository interface {
	// Add persists a new proof record and backfills the store-generated
	// identity on the aggregate.
	Add(ctx context.Context, aggregate *proof.Proof) error

	// GetAllImageRefs returns the artifact-store references of every stored
	// proof record. Used by the orphan sweep to decide which stored images
	// are still referenced.
	GetAllImageRefs(ctx context.Context) ([]string, error)
}
