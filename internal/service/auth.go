package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/avolkov/tokengate/internal/logger"
	"github.com/avolkov/tokengate/internal/model"
)

// Auth orchestrates the login pipeline: credential validation, token
// issuance, and recording of the issued token.
type Auth struct {
	userStore    model.UserStore
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	accessTokenStore model.AccessTokenStore,
	logger *logger.Logger,
	tokenManager model.TokenManager,
) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenService: NewTokenService(tokenManager, accessTokenStore, logger),
		logger:       logger,
	}
}

// Login authenticates the submitted credentials and returns a signed
// bearer token. Rejections surface as model.ErrInvalidCredentials;
// lookup or persistence failures propagate as distinct errors and are
// never folded into a rejection.
func (a *Auth) Login(ctx context.Context, credentials model.Credentials) (string, error) {
	a.logger.Debug("Auth service: starting login",
		"email", credentials.Email)

	user, err := a.validateCredentials(ctx, credentials)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			a.logger.Info("Auth service: credentials rejected",
				"email", credentials.Email)
			return "", err
		}
		a.logger.Error("Auth service: failed to validate credentials",
			"email", credentials.Email,
			"error", err.Error())
		return "", err
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"email", credentials.Email,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"email", credentials.Email,
		"user_id", user.ID)

	return token, nil
}

// validateCredentials loads the account once and carries it through
// the rest of the pipeline; an absent account and a password mismatch
// are indistinguishable to the caller.
func (a *Auth) validateCredentials(ctx context.Context, credentials model.Credentials) (model.User, error) {
	user, err := a.userStore.GetByEmail(ctx, credentials.Email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !equalSecrets(credentials.Password, user.Password) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetAccount returns the stored account for an authenticated user ID.
func (a *Auth) GetAccount(ctx context.Context, userID uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, err
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func equalSecrets(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
