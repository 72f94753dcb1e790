package model

import "errors"

var (
	// ErrNotFound signals an absent record, as opposed to a failed lookup.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials covers both an unknown email and a password
	// mismatch. Infrastructure failures are never mapped to it.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSigningSecretMissing means the process was started without a
	// token signing secret. Fatal configuration error, not retryable.
	ErrSigningSecretMissing = errors.New("token signing secret is not configured")

	ErrMissingToken = errors.New("authorization token is missing")
	ErrInvalidToken = errors.New("authorization token is invalid")
)
