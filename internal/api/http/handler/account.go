package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/avolkov/tokengate/internal/logger"
	"github.com/avolkov/tokengate/internal/model"
)

// AccountService resolves accounts for authenticated user IDs.
type AccountService interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (model.User, error)
}

// TokenService lists the audit records of issued tokens.
type TokenService interface {
	ListIssuedTokens(ctx context.Context, userID uuid.UUID) ([]model.AccessToken, error)
}

// Account handles protected endpoints for the authenticated account.
type Account struct {
	accountService AccountService
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAccount creates a new Account handler.
func NewAccount(accountService AccountService, tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Account {
	return &Account{
		accountService: accountService,
		tokenService:   tokenService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// accountView is the wire shape of an account. The stored secret never
// leaves the service.
type accountView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type accessTokenView struct {
	ID       uuid.UUID `json:"id"`
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

// Me returns the account of the authenticated caller.
func (h *Account) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingToken)
		return
	}

	user, err := h.accountService.GetAccount(r.Context(), userID)
	if err != nil {
		h.logger.Error("Account handler: failed to get account",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, Response{Status: true, Data: accountView{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}})
}

// IssuedTokens returns the audit trail of tokens issued to the caller.
func (h *Account) IssuedTokens(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		handleError(w, model.ErrMissingToken)
		return
	}

	tokens, err := h.tokenService.ListIssuedTokens(r.Context(), userID)
	if err != nil {
		h.logger.Error("Account handler: failed to list issued tokens",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	views := make([]accessTokenView, 0, len(tokens))
	for _, at := range tokens {
		views = append(views, accessTokenView{
			ID:       at.ID,
			Token:    at.Token,
			IssuedAt: at.IssuedAt,
		})
	}

	writeJSON(w, http.StatusOK, Response{Status: true, Data: views})
}
