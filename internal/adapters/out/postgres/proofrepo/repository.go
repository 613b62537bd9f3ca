package proofrepo

import (
	"context"

	"orderdelivery/internal/core/domain/model/proof"

	"gorm.io/gorm"
)

// GormProofRepository implements ports.ProofRepository using GORM.
type GormProofRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormProofRepository creates a new GORM proof repository.
func NewGormProofRepository(db *gorm.DB, tracker aggregateTracker) *GormProofRepository {
	return &GormProofRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new proof record and backfills the generated identity on the
// aggregate.
func (r *GormProofRepository) Add(ctx context.Context, aggregate *proof.Proof) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllImageRefs returns the artifact references of every proof record.
func (r *GormProofRepository) GetAllImageRefs(ctx context.Context) ([]string, error) {
	refs := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&ProofDTO{}).Pluck("image_ref", &refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}
