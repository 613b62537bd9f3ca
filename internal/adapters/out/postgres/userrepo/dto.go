// Package userrepo provides read-only access to user accounts. Accounts are
// owned by the identity service; this service only looks them up to verify
// existence and role.
package userrepo

import (
	"orderdelivery/internal/core/domain/model/user"
)

// UserDTO represents a row of the shared users table.
type UserDTO struct {
	ID     int64 `gorm:"primaryKey"`
	Name   string
	Email  string
	RoleID int64 `gorm:"index;not null"`
}

// TableName specifies the database table name for user accounts.
func (UserDTO) TableName() string {
	return "users"
}

// toDomain converts a database row to a user read model.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Name, dto.Email, user.Role(dto.RoleID))
}
