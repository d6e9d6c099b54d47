package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/access"
	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/metrics"
	"github.com/dtroode/cipherchat-server/internal/model"
)

// Conversations is the conversation registry. It creates direct and team
// conversations at most once and loads them for every other operation.
type Conversations struct {
	conversationStore model.ConversationStore
	keyStore          model.KeyStore
	directory         model.Directory
	metrics           *metrics.Metrics
	logger            *logger.Logger
	clock             func() time.Time
}

func NewConversations(
	conversationStore model.ConversationStore,
	keyStore model.KeyStore,
	directory model.Directory,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Conversations {
	return &Conversations{
		conversationStore: conversationStore,
		keyStore:          keyStore,
		directory:         directory,
		metrics:           metrics,
		logger:            logger,
		clock:             utcNow,
	}
}

// GetOrCreateDirect returns the direct conversation between the requester and
// another user, creating it on first use. An empty retention selects the default.
func (s *Conversations) GetOrCreateDirect(ctx context.Context, requester model.User, otherUserID uuid.UUID, retention string) (model.Conversation, error) {
	if otherUserID == uuid.Nil {
		return model.Conversation{}, fmt.Errorf("%w: participant id is required", model.ErrInvalidInput)
	}
	if otherUserID == requester.ID {
		return model.Conversation{}, fmt.Errorf("%w: cannot start a conversation with yourself", model.ErrInvalidInput)
	}

	policy, err := model.ParseRetention(retention)
	if err != nil {
		return model.Conversation{}, err
	}

	other, err := s.directory.GetUser(ctx, otherUserID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Conversation{}, fmt.Errorf("%w: cannot message this user", model.ErrForbidden)
	}
	if err != nil {
		return model.Conversation{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !access.CanMessageDirectly(requester, other) {
		return model.Conversation{}, fmt.Errorf("%w: cannot message this user", model.ErrForbidden)
	}

	now := s.clock()
	conversation, err := model.NormalizeConversation(model.Conversation{
		ID:              uuid.New(),
		Type:            model.ConversationTypeDirect,
		Participants:    []uuid.UUID{requester.ID, otherUserID},
		CreatedBy:       requester.ID,
		RetentionPolicy: policy,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return model.Conversation{}, err
	}

	key := *conversation.ParticipantsKey
	return s.getOrCreate(ctx, conversation, func(ctx context.Context) (model.Conversation, error) {
		return s.conversationStore.GetDirectByKey(ctx, key)
	})
}

// GetOrCreateTeam returns the conversation of a team, creating it on first use.
func (s *Conversations) GetOrCreateTeam(ctx context.Context, requester model.User, teamID uuid.UUID, retention string) (model.Conversation, error) {
	if teamID == uuid.Nil {
		return model.Conversation{}, fmt.Errorf("%w: team id is required", model.ErrInvalidInput)
	}

	policy, err := model.ParseRetention(retention)
	if err != nil {
		return model.Conversation{}, err
	}

	if !access.CanJoinTeamConversation(requester, teamID) {
		return model.Conversation{}, fmt.Errorf("%w: not a member of this team", model.ErrForbidden)
	}

	now := s.clock()
	conversation, err := model.NormalizeConversation(model.Conversation{
		ID:              uuid.New(),
		Type:            model.ConversationTypeTeam,
		TeamID:          &teamID,
		CreatedBy:       requester.ID,
		RetentionPolicy: policy,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return model.Conversation{}, err
	}

	return s.getOrCreate(ctx, conversation, func(ctx context.Context) (model.Conversation, error) {
		return s.conversationStore.GetTeamByTeamID(ctx, teamID)
	})
}

// getOrCreate returns the conversation found by lookup or inserts candidate.
// A concurrent creator wins through the unique index and its row is returned.
func (s *Conversations) getOrCreate(
	ctx context.Context,
	candidate model.Conversation,
	lookup func(ctx context.Context) (model.Conversation, error),
) (model.Conversation, error) {
	existing, err := lookup(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.Conversation{}, fmt.Errorf("failed to find conversation: %w", err)
	}

	created, err := s.conversationStore.Create(ctx, candidate)
	if errors.Is(err, model.ErrConflict) {
		winner, err := lookup(ctx)
		if err != nil {
			return model.Conversation{}, fmt.Errorf("failed to load concurrently created conversation: %w", err)
		}
		return winner, nil
	}
	if err != nil {
		return model.Conversation{}, fmt.Errorf("failed to create conversation: %w", err)
	}

	s.metrics.ConversationCreated(string(created.Type))
	s.logger.Info("conversation created", "conversation_id", created.ID, "type", created.Type)

	return created, nil
}

// ListForUser returns the requester's direct conversations and the
// conversations of their teams, most recently active first.
func (s *Conversations) ListForUser(ctx context.Context, requester model.User) ([]model.Conversation, error) {
	if requester.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user", model.ErrInvalidInput)
	}

	conversations, err := s.conversationStore.ListForUser(ctx, model.ConversationFilter{
		UserID:   requester.ID,
		TeamIDs:  requester.TeamIDs,
		AllTeams: requester.IsAdmin(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	visible := conversations[:0]
	for _, c := range conversations {
		if access.CanAccessConversation(requester, c) {
			visible = append(visible, c)
		}
	}

	return visible, nil
}

// UpdateRetention changes the policy applied to future messages. Stored
// messages keep the expiry computed when they were sent.
func (s *Conversations) UpdateRetention(ctx context.Context, requester model.User, conversationID uuid.UUID, retention string) (model.Conversation, error) {
	policy := model.RetentionPolicy(retention)
	if _, err := policy.Duration(); err != nil {
		return model.Conversation{}, err
	}

	conversation, err := s.Authorize(ctx, requester, conversationID)
	if err != nil {
		return model.Conversation{}, err
	}

	if !access.CanChangeRetention(requester, conversation) {
		return model.Conversation{}, fmt.Errorf("%w: only the creator or an admin can change retention", model.ErrForbidden)
	}

	updated, err := s.conversationStore.UpdateRetention(ctx, conversation.ID, policy, s.clock())
	if err != nil {
		return model.Conversation{}, fmt.Errorf("failed to update retention: %w", err)
	}

	return updated, nil
}

// ListParticipants returns the members of a conversation with the newest
// public key of each. Members without a key have a nil PublicKey.
func (s *Conversations) ListParticipants(ctx context.Context, requester model.User, conversationID uuid.UUID) ([]model.Participant, error) {
	conversation, err := s.Authorize(ctx, requester, conversationID)
	if err != nil {
		return nil, err
	}

	memberIDs, err := s.memberIDs(ctx, conversation)
	if err != nil {
		return nil, err
	}
	if len(memberIDs) == 0 {
		return []model.Participant{}, nil
	}

	users, err := s.directory.GetUsers(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve participants: %w", err)
	}

	keys, err := s.keyStore.LatestByUsers(ctx, memberIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get participant keys: %w", err)
	}

	participants := make([]model.Participant, 0, len(users))
	for _, user := range users {
		participant := model.Participant{User: user}
		if key, ok := keys[user.ID]; ok {
			publicKey := key.PublicKey
			rotatedAt := key.LastRotatedAt
			participant.PublicKey = &publicKey
			participant.Algorithm = key.Algorithm
			participant.KeyUpdatedAt = &rotatedAt
		}
		participants = append(participants, participant)
	}

	return participants, nil
}

// Authorize loads a conversation for the requester. A missing conversation
// and a denied one are indistinguishable to the caller.
func (s *Conversations) Authorize(ctx context.Context, requester model.User, conversationID uuid.UUID) (model.Conversation, error) {
	if conversationID == uuid.Nil {
		return model.Conversation{}, fmt.Errorf("%w: conversation id is required", model.ErrInvalidInput)
	}

	conversation, err := s.conversationStore.GetByID(ctx, conversationID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Conversation{}, fmt.Errorf("%w: conversation access denied", model.ErrForbidden)
	}
	if err != nil {
		return model.Conversation{}, fmt.Errorf("failed to get conversation: %w", err)
	}

	if !access.CanAccessConversation(requester, conversation) {
		return model.Conversation{}, fmt.Errorf("%w: conversation access denied", model.ErrForbidden)
	}

	return conversation, nil
}

// memberIDs returns who belongs to the conversation right now.
func (s *Conversations) memberIDs(ctx context.Context, conversation model.Conversation) ([]uuid.UUID, error) {
	if conversation.Type == model.ConversationTypeDirect {
		return conversation.Participants, nil
	}

	members, err := s.directory.ListTeamMembers(ctx, *conversation.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}
