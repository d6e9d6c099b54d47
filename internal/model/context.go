package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager carries the authenticated principal through a request.
// Transports set it once after token validation; handlers only read it.
type ContextManager interface {
	WithUserID(ctx context.Context, userID uuid.UUID) context.Context
	// UserID reports false when the context has no authenticated user.
	UserID(ctx context.Context) (uuid.UUID, bool)
}
