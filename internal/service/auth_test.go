package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/tokengate/internal/mocks"
	"github.com/avolkov/tokengate/internal/model"
	"github.com/avolkov/tokengate/internal/testutil"
)

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userID := uuid.New()
	user := model.User{ID: userID, Email: "a@x.com", Password: "secret", Role: "user"}

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)
	tokMan.On("GenerateAccessToken", userID, "a@x.com", "user").Return("signed-token", nil)
	tokenStore.On("Create", mock.Anything, mock.MatchedBy(func(at model.AccessToken) bool {
		return at.Token == "signed-token" && at.UserID == userID && at.Email == "a@x.com" && at.Role == "user"
	})).Return(nil).Once()

	a := NewAuth(userStore, tokenStore, log, tokMan)

	token, err := a.Login(ctx, model.Credentials{Email: "a@x.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)

	tokenStore.AssertNumberOfCalls(t, "Create", 1)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}

	userStore.On("GetByEmail", mock.Anything, "missing@x.com").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, tokenStore, testutil.MakeNoopLogger(), tokMan)

	_, err := a.Login(ctx, model.Credentials{Email: "missing@x.com", Password: "whatever"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	tokMan.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything, mock.Anything)
	tokenStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Email: "a@x.com", Password: "secret", Role: "user"}
	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)

	a := NewAuth(userStore, tokenStore, testutil.MakeNoopLogger(), tokMan)

	_, err := a.Login(ctx, model.Credentials{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	tokMan.AssertNotCalled(t, "GenerateAccessToken", mock.Anything, mock.Anything, mock.Anything)
	tokenStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Login_LookupFailure(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, assert.AnError)

	a := NewAuth(userStore, tokenStore, testutil.MakeNoopLogger(), tokMan)

	_, err := a.Login(ctx, model.Credentials{Email: "a@x.com", Password: "secret"})
	require.Error(t, err)
	// A failed lookup is not proof of bad credentials.
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_SigningSecretMissing(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Email: "a@x.com", Password: "secret", Role: "user"}
	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)
	tokMan.On("GenerateAccessToken", user.ID, "a@x.com", "user").Return("", model.ErrSigningSecretMissing)

	a := NewAuth(userStore, tokenStore, testutil.MakeNoopLogger(), tokMan)

	_, err := a.Login(ctx, model.Credentials{Email: "a@x.com", Password: "secret"})
	require.ErrorIs(t, err, model.ErrSigningSecretMissing)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
	tokenStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Login_PersistFailure(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}

	user := model.User{ID: uuid.New(), Email: "a@x.com", Password: "secret", Role: "user"}
	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(user, nil)
	tokMan.On("GenerateAccessToken", user.ID, "a@x.com", "user").Return("signed-token", nil)
	tokenStore.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	a := NewAuth(userStore, tokenStore, testutil.MakeNoopLogger(), tokMan)

	_, err := a.Login(ctx, model.Credentials{Email: "a@x.com", Password: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist access token")
}

func TestAuth_GetAccount(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}

	userID := uuid.New()
	user := model.User{ID: userID, Email: "a@x.com", Role: "user"}
	userStore.On("GetByID", mock.Anything, userID).Return(user, nil)

	a := NewAuth(userStore, tokenStore, testutil.MakeNoopLogger(), tokMan)

	got, err := a.GetAccount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)
}

func TestAuth_GetAccount_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokenStore := &mocks.AccessTokenStore{}
	tokMan := &mocks.TokenManager{}

	userID := uuid.New()
	userStore.On("GetByID", mock.Anything, userID).Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, tokenStore, testutil.MakeNoopLogger(), tokMan)

	_, err := a.GetAccount(ctx, userID)
	require.ErrorIs(t, err, model.ErrNotFound)
}
