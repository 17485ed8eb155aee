package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application identity.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     *string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor returns the identity this user acts as.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     UserRole
}

// Authorize checks that the actor holds the required role.
// Returns ErrUnauthorized for an empty identity and ErrForbidden for a role mismatch.
func (a Actor) Authorize(required UserRole) error {
	if a.ID == uuid.Nil {
		return ErrUnauthorized
	}
	if a.Role != required {
		return ErrForbidden
	}
	return nil
}
