package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/tokengate/internal/logger"
	"github.com/avolkov/tokengate/internal/model"
)

// TokenService issues signed bearer tokens and keeps the audit trail
// of every issuance. It composes the TokenManager and AccessTokenStore.
type TokenService struct {
	manager model.TokenManager
	store   model.AccessTokenStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, store model.AccessTokenStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, store: store, logger: logger}
}

// Issue signs a token for the user and persists its audit record.
// A failed write fails the issue: a token the store never saw would
// break the recorded-iff-issued invariant.
func (s *TokenService) Issue(ctx context.Context, user model.User) (string, error) {
	access, err := s.manager.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("issue access: %w", err)
	}

	now := time.Now()
	at := model.AccessToken{
		ID:        uuid.New(),
		Token:     access,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      user.Role,
		IssuedAt:  now,
		CreatedAt: now,
	}

	if err := s.store.Create(ctx, at); err != nil {
		return "", fmt.Errorf("persist access token: %w", err)
	}

	s.logger.Debug("Token service: access token issued",
		"user_id", user.ID,
		"token_id", at.ID)

	return access, nil
}

// GetUserID resolves the user ID from a presented bearer token.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(token)
}

// ListIssuedTokens returns the audit records for a user's issued tokens.
func (s *TokenService) ListIssuedTokens(ctx context.Context, userID uuid.UUID) ([]model.AccessToken, error) {
	tokens, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list access tokens: %w", err)
	}
	return tokens, nil
}
