package userrepo

import (
	"context"
	"errors"

	"orderdelivery/internal/core/domain/model/user"
	"orderdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDeliverer retrieves a user holding the deliverer role. A user that
// exists under another role is reported as not found; callers cannot tell
// the two cases apart.
func (r *GormUserRepository) GetDeliverer(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND role_id = ?", id, user.RoleDeliverer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivererId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
