package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkov/tokengate/internal/logger"
	"github.com/avolkov/tokengate/internal/model"
)

// AuthService defines the login operation.
type AuthService interface {
	Login(ctx context.Context, credentials model.Credentials) (string, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates submitted credentials and returns a signed
// bearer token in the response envelope.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Status: false, Message: "malformed request body"})
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"email", req.Email)

	token, err := h.authService.Login(r.Context(), model.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"email", req.Email)

	writeJSON(w, http.StatusOK, Response{Status: true, Data: token})
}
