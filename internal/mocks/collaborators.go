package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var (
	_ model.Publisher    = (*Publisher)(nil)
	_ model.ArchiveStore = (*ArchiveStore)(nil)
	_ model.TokenManager = (*TokenManager)(nil)
)

// Publisher mocks model.Publisher.
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, event model.DeliveryEvent, recipients []uuid.UUID) error {
	args := m.Called(ctx, event, recipients)
	return args.Error(0)
}

// ArchiveStore mocks model.ArchiveStore.
type ArchiveStore struct {
	mock.Mock
}

func (m *ArchiveStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *ArchiveStore) PresignedURL(ctx context.Context, key string, fileName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, fileName, expiry)
	return args.String(0), args.Error(1)
}

func (m *ArchiveStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// TokenManager mocks model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func (m *TokenManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *TokenManager) ParseAccessToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
