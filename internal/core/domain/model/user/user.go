// Package user models the user records the lifecycle engine needs to consult.
// User accounts are owned by a separate service; this package only represents
// the read-side view required for order ownership and deliverer checks.
package user

import (
	"errors"
	"fmt"

	"orderdelivery/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the RestoreUser factory function.
var ErrUserIsNotConstructed = errors.New("User must be created via RestoreUser constructor")

// Role identifies the account role. Role values mirror the account service's
// role table.
type Role int64

const (
	// RoleCustomer is a regular shopper account.
	RoleCustomer Role = 1

	// RoleDeliverer marks accounts that can be assigned to deliver orders.
	RoleDeliverer Role = 2
)

// User is a read-only projection of a user account.
type User struct {
	id    int64
	name  string
	email string
	role  Role

	isConstructed bool
}

// RestoreUser reconstructs a user projection from persisted state.
func RestoreUser(id int64, name, email string, role Role) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("userId",
			fmt.Errorf("%d is not a valid user id", id))
	}

	return &User{
		id:            id,
		name:          name,
		email:         email,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the user was created through RestoreUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() int64 {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Email returns the account email.
func (u *User) Email() string {
	return u.email
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// IsDeliverer reports whether the account may be assigned to deliver orders.
func (u *User) IsDeliverer() bool {
	return u.role == RoleDeliverer
}
