package ports

import (
	"context"

	"orderdelivery/internal/core/domain/model/user"
)

// UserRepository provides read access to user accounts. Accounts are owned
// by a separate service; this service never writes them.
type UserRepository interface {
	// Get retrieves a user by identifier.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetDeliverer retrieves a user that holds the deliverer role.
	// A user that exists but lacks the role is reported as not found,
	// matching the assignment operation's contract.
	GetDeliverer(ctx context.Context, id int64) (*user.User, error)
}
