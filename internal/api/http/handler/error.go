package handler

import (
	"errors"
	"net/http"

	"github.com/avolkov/tokengate/internal/model"
)

// handleError maps domain sentinels to HTTP responses. Bad credentials
// answer 401; an infrastructure failure is never reported as a
// rejection, only as a 500 with no detail.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, Response{Status: false, Message: "invalid credentials"})
	case errors.Is(err, model.ErrMissingToken), errors.Is(err, model.ErrInvalidToken):
		writeJSON(w, http.StatusUnauthorized, Response{Status: false, Message: err.Error()})
	case errors.Is(err, model.ErrNotFound):
		writeJSON(w, http.StatusNotFound, Response{Status: false, Message: "record not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, Response{Status: false, Message: "internal server error"})
	}
}
