package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/tokengate/internal/mocks"
	"github.com/avolkov/tokengate/internal/model"
	"github.com/avolkov/tokengate/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "a@x.com", Role: "user"}

	manager := &mocks.TokenManager{}
	store := &mocks.AccessTokenStore{}

	manager.On("GenerateAccessToken", user.ID, "a@x.com", "user").Return("access", nil).Once()
	store.On("Create", mock.Anything, mock.MatchedBy(func(at model.AccessToken) bool {
		return at.ID != uuid.Nil && at.Token == "access" && at.UserID == user.ID && !at.IssuedAt.IsZero()
	})).Return(nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	access, err := svc.Issue(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "access", access)

	store.AssertExpectations(t)
}

func TestTokenService_Issue_ManagerError(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "a@x.com", Role: "user"}

	manager := &mocks.TokenManager{}
	store := &mocks.AccessTokenStore{}

	manager.On("GenerateAccessToken", user.ID, "a@x.com", "user").Return("", assert.AnError).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	_, err := svc.Issue(ctx, user)
	require.Error(t, err)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTokenService_Issue_StoreError(t *testing.T) {
	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "a@x.com", Role: "user"}

	manager := &mocks.TokenManager{}
	store := &mocks.AccessTokenStore{}

	manager.On("GenerateAccessToken", user.ID, "a@x.com", "user").Return("access", nil).Once()
	store.On("Create", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	_, err := svc.Issue(ctx, user)
	require.Error(t, err)
}

func TestTokenService_GetUserID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &mocks.TokenManager{}
	store := &mocks.AccessTokenStore{}

	manager.On("ParseAccessToken", "token").Return(userID, nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	got, err := svc.GetUserID(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenService_ListIssuedTokens(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &mocks.TokenManager{}
	store := &mocks.AccessTokenStore{}

	records := []model.AccessToken{
		{ID: uuid.New(), UserID: userID, Token: "t1", IssuedAt: time.Now()},
		{ID: uuid.New(), UserID: userID, Token: "t2", IssuedAt: time.Now()},
	}
	store.On("ListByUser", mock.Anything, userID).Return(records, nil).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	got, err := svc.ListIssuedTokens(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTokenService_ListIssuedTokens_StoreError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &mocks.TokenManager{}
	store := &mocks.AccessTokenStore{}

	store.On("ListByUser", mock.Anything, userID).Return(nil, assert.AnError).Once()

	svc := NewTokenService(manager, store, testutil.MakeNoopLogger())

	_, err := svc.ListIssuedTokens(ctx, userID)
	require.Error(t, err)
}
