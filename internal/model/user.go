package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored account with its credential and role.
//
// Password is stored and compared as-is. A production deployment must
// replace this with a salted hash comparison before real use.
type User struct {
	ID        uuid.UUID
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// Credentials is the email/password pair submitted by a caller.
// Transient input, never persisted.
type Credentials struct {
	Email    string
	Password string
}
