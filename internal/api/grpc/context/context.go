package context

import (
	"context"

	"github.com/google/uuid"
)

// userIDKey is the context key of the authenticated user id. It is unexported
// so request metadata can never supply it.
type userIDKey struct{}

// Manager represents a gRPC context manager for user ID operations.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// WithUserID returns a context carrying the authenticated user ID.
func (m *Manager) WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID retrieves the authenticated user ID.
//
// Returns the user UUID and a boolean indicating if the user ID was found.
func (m *Manager) UserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
