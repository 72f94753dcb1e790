package model

import "github.com/google/uuid"

// TokenManager signs and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID, email, role string) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
}
