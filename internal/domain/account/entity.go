// Package account defines the user account entity and its role enum.
package account

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies what kind of user an account belongs to.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleTeacher Role = "Teacher"
	RoleParent  Role = "Parent"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleParent:
		return true
	}
	return false
}

// Account is a user record with identity, credentials, and role.
// Accounts are created at signup or startup seeding and never
// updated or deleted afterwards.
type Account struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
