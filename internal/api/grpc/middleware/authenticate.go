package middleware

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/token"
)

const authorizationHeader = "authorization"

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Authenticate validates bearer tokens and stores the caller in the context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// AuthFunc is an auth.AuthFunc: it reads the Bearer token from the
// authorization metadata and rejects calls without a valid one.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	raw := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(authorizationHeader); len(values) > 0 {
			raw = token.FromAuthorization(values[0])
		}
	}
	if raw == "" {
		return nil, status.Error(codes.Unauthenticated, "missing authorization token")
	}

	userID, err := m.tokenService.GetUserID(ctx, raw)
	switch {
	case err == nil && userID != uuid.Nil:
		return m.contextManager.WithUserID(ctx, userID), nil
	case err == nil, errors.Is(err, token.ErrInvalidToken):
		m.logger.Debug("token rejected", "error", err)
		return nil, status.Error(codes.Unauthenticated, "invalid authorization token")
	default:
		m.logger.Error("failed to verify token", "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}
}
