// Package mocks holds testify mocks of the model interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var (
	_ model.ConversationStore = (*ConversationStore)(nil)
	_ model.MessageStore      = (*MessageStore)(nil)
	_ model.KeyStore          = (*KeyStore)(nil)
	_ model.Directory         = (*Directory)(nil)
)

// ConversationStore mocks model.ConversationStore.
type ConversationStore struct {
	mock.Mock
}

func (m *ConversationStore) Create(ctx context.Context, conversation model.Conversation) (model.Conversation, error) {
	args := m.Called(ctx, conversation)
	return args.Get(0).(model.Conversation), args.Error(1)
}

func (m *ConversationStore) GetByID(ctx context.Context, id uuid.UUID) (model.Conversation, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Conversation), args.Error(1)
}

func (m *ConversationStore) GetDirectByKey(ctx context.Context, participantsKey string) (model.Conversation, error) {
	args := m.Called(ctx, participantsKey)
	return args.Get(0).(model.Conversation), args.Error(1)
}

func (m *ConversationStore) GetTeamByTeamID(ctx context.Context, teamID uuid.UUID) (model.Conversation, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).(model.Conversation), args.Error(1)
}

func (m *ConversationStore) ListForUser(ctx context.Context, filter model.ConversationFilter) ([]model.Conversation, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Conversation), args.Error(1)
}

func (m *ConversationStore) UpdateRetention(ctx context.Context, id uuid.UUID, policy model.RetentionPolicy, updatedAt time.Time) (model.Conversation, error) {
	args := m.Called(ctx, id, policy, updatedAt)
	return args.Get(0).(model.Conversation), args.Error(1)
}

func (m *ConversationStore) TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MessageStore mocks model.MessageStore.
type MessageStore struct {
	mock.Mock
}

func (m *MessageStore) Create(ctx context.Context, message model.Message) (model.Message, bool, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(model.Message), args.Bool(1), args.Error(2)
}

func (m *MessageStore) List(ctx context.Context, conversationID uuid.UUID, query model.MessageQuery) ([]model.Message, error) {
	args := m.Called(ctx, conversationID, query)
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MessageStore) Search(ctx context.Context, conversationID uuid.UUID, query model.MessageSearch) ([]model.Message, error) {
	args := m.Called(ctx, conversationID, query)
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MessageStore) ListAll(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	args := m.Called(ctx, conversationID)
	return args.Get(0).([]model.Message), args.Error(1)
}

func (m *MessageStore) DeleteExpired(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	args := m.Called(ctx, cutoff, limit)
	return args.Get(0).(int64), args.Error(1)
}

// KeyStore mocks model.KeyStore.
type KeyStore struct {
	mock.Mock
}

func (m *KeyStore) Upsert(ctx context.Context, key model.DeviceKey) (model.DeviceKey, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.DeviceKey), args.Error(1)
}

func (m *KeyStore) GetByUsers(ctx context.Context, userIDs []uuid.UUID) ([]model.DeviceKey, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).([]model.DeviceKey), args.Error(1)
}

func (m *KeyStore) LatestByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]model.DeviceKey, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(map[uuid.UUID]model.DeviceKey), args.Error(1)
}

// Directory mocks model.Directory.
type Directory struct {
	mock.Mock
}

func (m *Directory) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *Directory) GetUsers(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *Directory) ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, teamID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}
