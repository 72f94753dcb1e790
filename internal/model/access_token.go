package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AccessTokenStore persists audit records of issued tokens.
type AccessTokenStore interface {
	Create(ctx context.Context, token AccessToken) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]AccessToken, error)
}

// AccessToken is the audit record created for every issued token.
// Immutable once written; a record exists if and only if the login
// that produced it succeeded.
type AccessToken struct {
	ID        uuid.UUID
	Token     string
	UserID    uuid.UUID
	Email     string
	Role      string
	IssuedAt  time.Time
	CreatedAt time.Time
}
