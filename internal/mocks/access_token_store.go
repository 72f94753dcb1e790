package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/avolkov/tokengate/internal/model"
)

// AccessTokenStore is a mock implementation of model.AccessTokenStore.
type AccessTokenStore struct {
	mock.Mock
}

func (m *AccessTokenStore) Create(ctx context.Context, token model.AccessToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *AccessTokenStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.AccessToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccessToken), args.Error(1)
}
