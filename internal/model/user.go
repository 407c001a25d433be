package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
// Create must return ErrDuplicateEmail when the email is already taken,
// including under concurrent signup attempts.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored user with credential material.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy of the user with the password hash stripped.
// Everything outside the credential service sees users through this.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
