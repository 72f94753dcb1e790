package context

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

// userIDKey carries the authenticated user ID through request contexts.
const userIDKey ctxKey = iota

// Manager reads and writes the authenticated user ID on request
// contexts. It is the HTTP counterpart of the ContextManager the
// middleware and handlers share.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext extracts the user ID set by the authentication
// middleware. The second return reports whether one was present.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
