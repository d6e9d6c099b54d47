package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/access"
	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/metrics"
	"github.com/dtroode/cipherchat-server/internal/model"
)

// ExportPrefix is the object key prefix of archived exports.
const ExportPrefix = "exports"

const exportContentType = "application/json"

// Authorizer loads a conversation the requester is allowed to use.
type Authorizer interface {
	Authorize(ctx context.Context, requester model.User, conversationID uuid.UUID) (model.Conversation, error)
}

// Messages stores and serves encrypted envelopes. Payload fields are never
// inspected beyond size and presence checks.
type Messages struct {
	authorizer        Authorizer
	conversationStore model.ConversationStore
	messageStore      model.MessageStore
	directory         model.Directory
	publisher         model.Publisher
	archive           model.ArchiveStore
	archiveLinkTTL    time.Duration
	metrics           *metrics.Metrics
	logger            *logger.Logger
	clock             func() time.Time
}

type MessagesOption func(*Messages)

// WithArchive enables archived exports with presigned links valid for ttl.
func WithArchive(archive model.ArchiveStore, ttl time.Duration) MessagesOption {
	return func(s *Messages) {
		s.archive = archive
		s.archiveLinkTTL = ttl
	}
}

func NewMessages(
	authorizer Authorizer,
	conversationStore model.ConversationStore,
	messageStore model.MessageStore,
	directory model.Directory,
	publisher model.Publisher,
	metrics *metrics.Metrics,
	logger *logger.Logger,
	opts ...MessagesOption,
) *Messages {
	s := &Messages{
		authorizer:        authorizer,
		conversationStore: conversationStore,
		messageStore:      messageStore,
		directory:         directory,
		publisher:         publisher,
		archiveLinkTTL:    15 * time.Minute,
		metrics:           metrics,
		logger:            logger,
		clock:             utcNow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append stores an envelope in the conversation and notifies live
// participants. Replaying a request id returns the stored message unchanged.
func (s *Messages) Append(ctx context.Context, requester model.User, conversationID uuid.UUID, envelope model.Envelope) (model.Message, error) {
	started := time.Now()

	conversation, err := s.authorizer.Authorize(ctx, requester, conversationID)
	if err != nil {
		return model.Message{}, err
	}

	recipients, err := validateEnvelope(envelope)
	if err != nil {
		return model.Message{}, err
	}

	lifetime, err := conversation.RetentionPolicy.Duration()
	if err != nil {
		return model.Message{}, fmt.Errorf("conversation has invalid retention: %w", err)
	}

	metadata := envelope.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}

	now := s.clock()
	message := model.Message{
		ID:              uuid.New(),
		ConversationID:  conversation.ID,
		SenderID:        requester.ID,
		RecipientIDs:    recipients,
		Ciphertext:      envelope.Ciphertext,
		IV:              envelope.IV,
		AuthTag:         envelope.AuthTag,
		DerivedKeyID:    envelope.DerivedKeyID,
		Metadata:        metadata,
		RetentionPolicy: conversation.RetentionPolicy,
		ExpiresAt:       now.Add(lifetime),
		CreatedAt:       now,
		RequestID:       envelope.RequestID,
	}

	stored, created, err := s.messageStore.Create(ctx, message)
	if err != nil {
		return model.Message{}, fmt.Errorf("failed to store message: %w", err)
	}
	if !created {
		if stored.ConversationID != conversation.ID {
			return model.Message{}, fmt.Errorf("%w: request id already used in another conversation", model.ErrConflict)
		}
		return stored, nil
	}

	if err := s.conversationStore.TouchLastMessage(ctx, conversation.ID, stored.CreatedAt); err != nil {
		s.logger.Warn("failed to update conversation activity", "conversation_id", conversation.ID, "error", err)
	}

	s.metrics.MessageAppended(started)
	s.publish(context.WithoutCancel(ctx), conversation, stored)

	return stored, nil
}

// publish hands the event to the publisher. Failures are logged only.
func (s *Messages) publish(ctx context.Context, conversation model.Conversation, message model.Message) {
	targets := []uuid.UUID{message.SenderID}

	if len(message.RecipientIDs) > 0 {
		users, err := s.directory.GetUsers(ctx, message.RecipientIDs)
		if err != nil {
			s.logger.Warn("failed to resolve recipients for delivery", "message_id", message.ID, "error", err)
		}
		for _, user := range users {
			if access.CanAccessConversation(user, conversation) {
				targets = append(targets, user.ID)
			}
		}
	}

	if err := s.publisher.Publish(ctx, model.NewDeliveryEvent(message), targets); err != nil {
		s.logger.Warn("failed to publish delivery event", "message_id", message.ID, "error", err)
	}
}

// List returns one page of messages older than the cursor, newest first.
func (s *Messages) List(ctx context.Context, requester model.User, conversationID uuid.UUID, query model.MessageQuery) (model.MessagePage, error) {
	if query.BeforeID != nil && query.Before == nil {
		return model.MessagePage{}, fmt.Errorf("%w: beforeId requires before", model.ErrInvalidInput)
	}

	conversation, err := s.authorizer.Authorize(ctx, requester, conversationID)
	if err != nil {
		return model.MessagePage{}, err
	}

	query.Limit = clampLimit(query.Limit, model.DefaultListLimit, model.MaxListLimit)
	if query.Before != nil {
		before := query.Before.UTC()
		query.Before = &before
	}

	messages, err := s.messageStore.List(ctx, conversation.ID, query)
	if err != nil {
		return model.MessagePage{}, fmt.Errorf("failed to list messages: %w", err)
	}

	page := model.MessagePage{Messages: messages}
	if len(messages) == query.Limit {
		last := messages[len(messages)-1]
		page.NextCursor = &model.Cursor{Before: last.CreatedAt, BeforeID: last.ID}
	}

	return page, nil
}

// Search filters messages by sender and an inclusive time range, newest first.
func (s *Messages) Search(ctx context.Context, requester model.User, conversationID uuid.UUID, query model.MessageSearch) ([]model.Message, error) {
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return nil, fmt.Errorf("%w: from is after to", model.ErrInvalidInput)
	}

	conversation, err := s.authorizer.Authorize(ctx, requester, conversationID)
	if err != nil {
		return nil, err
	}

	query.Limit = clampLimit(query.Limit, model.DefaultSearchLimit, model.MaxSearchLimit)

	messages, err := s.messageStore.Search(ctx, conversation.ID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}

	return messages, nil
}

// Export dumps the whole conversation, oldest message first. With Archive set
// the dump is also uploaded and a temporary download link returned.
func (s *Messages) Export(ctx context.Context, requester model.User, conversationID uuid.UUID, params model.ExportParams) (model.Export, error) {
	if params.Archive && s.archive == nil {
		return model.Export{}, fmt.Errorf("%w: export archive is not configured", model.ErrUnavailable)
	}

	conversation, err := s.authorizer.Authorize(ctx, requester, conversationID)
	if err != nil {
		return model.Export{}, err
	}

	messages, err := s.messageStore.ListAll(ctx, conversation.ID)
	if err != nil {
		return model.Export{}, fmt.Errorf("failed to load messages: %w", err)
	}
	if messages == nil {
		messages = []model.Message{}
	}

	now := s.clock()
	export := model.Export{
		Conversation: conversation,
		Messages:     messages,
		Count:        len(messages),
		FileName:     fmt.Sprintf("conversation-%s-%d.json", conversation.ID, now.UnixMilli()),
		ExportedAt:   now,
	}

	if params.Archive {
		if err := s.archiveExport(ctx, &export); err != nil {
			return model.Export{}, err
		}
	}

	return export, nil
}

func (s *Messages) archiveExport(ctx context.Context, export *model.Export) error {
	body, err := json.Marshal(newExportDocument(*export))
	if err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}

	key := fmt.Sprintf("%s/%s/%d.json", ExportPrefix, export.Conversation.ID, export.ExportedAt.UnixMilli())
	if err := s.archive.Upload(ctx, key, bytes.NewReader(body), int64(len(body)), exportContentType); err != nil {
		return fmt.Errorf("%w: failed to upload export: %v", model.ErrUnavailable, err)
	}

	url, err := s.archive.PresignedURL(ctx, key, export.FileName, s.archiveLinkTTL)
	if err != nil {
		return fmt.Errorf("%w: failed to sign export link: %v", model.ErrUnavailable, err)
	}

	export.ArchiveKey = key
	export.ArchiveURL = url

	s.logger.Info("conversation exported", "conversation_id", export.Conversation.ID, "count", export.Count, "key", key)

	return nil
}

func validateEnvelope(envelope model.Envelope) ([]uuid.UUID, error) {
	switch {
	case len(envelope.Ciphertext) == 0:
		return nil, fmt.Errorf("%w: ciphertext is required", model.ErrInvalidInput)
	case len(envelope.IV) == 0:
		return nil, fmt.Errorf("%w: iv is required", model.ErrInvalidInput)
	case len(envelope.AuthTag) == 0:
		return nil, fmt.Errorf("%w: authTag is required", model.ErrInvalidInput)
	case len(envelope.Ciphertext) > model.MaxCiphertextSize:
		return nil, fmt.Errorf("%w: ciphertext exceeds %d bytes", model.ErrInvalidInput, model.MaxCiphertextSize)
	case len(envelope.Recipients) == 0:
		return nil, fmt.Errorf("%w: recipients are required", model.ErrInvalidInput)
	case len(envelope.Recipients) > model.MaxRecipients:
		return nil, fmt.Errorf("%w: at most %d recipients are allowed", model.ErrInvalidInput, model.MaxRecipients)
	}

	if len(envelope.Metadata) > 0 {
		var object map[string]json.RawMessage
		if err := json.Unmarshal(envelope.Metadata, &object); err != nil || object == nil {
			return nil, fmt.Errorf("%w: metadata must be a JSON object", model.ErrInvalidInput)
		}
	}

	recipients := make([]uuid.UUID, 0, len(envelope.Recipients))
	seen := make(map[uuid.UUID]struct{}, len(envelope.Recipients))
	for _, raw := range envelope.Recipients {
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			return nil, fmt.Errorf("%w: invalid recipient id %q", model.ErrInvalidInput, raw)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	return recipients, nil
}

func clampLimit(limit, defaultLimit, maxLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}
