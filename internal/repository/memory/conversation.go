// Package memory keeps every store in process memory. It backs the
// DATABASE_DRIVER=memory mode and the service tests, and enforces the same
// uniqueness rules as the PostgreSQL schema.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.ConversationStore = (*ConversationRepository)(nil)

type ConversationRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]model.Conversation
	byPair map[string]uuid.UUID
	byTeam map[uuid.UUID]uuid.UUID
}

func NewConversationRepository() *ConversationRepository {
	return &ConversationRepository{
		byID:   make(map[uuid.UUID]model.Conversation),
		byPair: make(map[string]uuid.UUID),
		byTeam: make(map[uuid.UUID]uuid.UUID),
	}
}

func (r *ConversationRepository) Create(_ context.Context, conversation model.Conversation) (model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[conversation.ID]; ok {
		return model.Conversation{}, model.ErrConflict
	}
	switch conversation.Type {
	case model.ConversationTypeDirect:
		if conversation.ParticipantsKey == nil {
			return model.Conversation{}, model.ErrInvalidInput
		}
		if _, ok := r.byPair[*conversation.ParticipantsKey]; ok {
			return model.Conversation{}, model.ErrConflict
		}
		r.byPair[*conversation.ParticipantsKey] = conversation.ID
	case model.ConversationTypeTeam:
		if conversation.TeamID == nil {
			return model.Conversation{}, model.ErrInvalidInput
		}
		if _, ok := r.byTeam[*conversation.TeamID]; ok {
			return model.Conversation{}, model.ErrConflict
		}
		r.byTeam[*conversation.TeamID] = conversation.ID
	}

	stored := cloneConversation(conversation)
	r.byID[conversation.ID] = stored
	return cloneConversation(stored), nil
}

func (r *ConversationRepository) GetByID(_ context.Context, id uuid.UUID) (model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return model.Conversation{}, model.ErrNotFound
	}
	return cloneConversation(c), nil
}

func (r *ConversationRepository) GetDirectByKey(_ context.Context, participantsKey string) (model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byPair[participantsKey]
	if !ok {
		return model.Conversation{}, model.ErrNotFound
	}
	return cloneConversation(r.byID[id]), nil
}

func (r *ConversationRepository) GetTeamByTeamID(_ context.Context, teamID uuid.UUID) (model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byTeam[teamID]
	if !ok {
		return model.Conversation{}, model.ErrNotFound
	}
	return cloneConversation(r.byID[id]), nil
}

func (r *ConversationRepository) ListForUser(_ context.Context, filter model.ConversationFilter) ([]model.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Conversation
	for _, c := range r.byID {
		switch c.Type {
		case model.ConversationTypeDirect:
			if !slices.Contains(c.Participants, filter.UserID) {
				continue
			}
		case model.ConversationTypeTeam:
			if !filter.AllTeams && !slices.Contains(filter.TeamIDs, *c.TeamID) {
				continue
			}
		}
		out = append(out, cloneConversation(c))
	}

	slices.SortFunc(out, compareByActivity)
	return out, nil
}

func (r *ConversationRepository) UpdateRetention(_ context.Context, id uuid.UUID, policy model.RetentionPolicy, updatedAt time.Time) (model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return model.Conversation{}, model.ErrNotFound
	}
	c.RetentionPolicy = policy
	c.UpdatedAt = updatedAt
	r.byID[id] = c
	return cloneConversation(c), nil
}

func (r *ConversationRepository) TouchLastMessage(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byID[id]
	if !ok {
		return model.ErrNotFound
	}
	if c.LastMessageAt == nil || at.After(*c.LastMessageAt) {
		last := at
		c.LastMessageAt = &last
	}
	r.byID[id] = c
	return nil
}

// compareByActivity orders by last message time descending with never-used
// conversations last, then by creation time descending.
func compareByActivity(a, b model.Conversation) int {
	switch {
	case a.LastMessageAt != nil && b.LastMessageAt == nil:
		return -1
	case a.LastMessageAt == nil && b.LastMessageAt != nil:
		return 1
	case a.LastMessageAt != nil && b.LastMessageAt != nil && !a.LastMessageAt.Equal(*b.LastMessageAt):
		return b.LastMessageAt.Compare(*a.LastMessageAt)
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

func cloneConversation(c model.Conversation) model.Conversation {
	c.Participants = slices.Clone(c.Participants)
	if c.ParticipantsKey != nil {
		key := *c.ParticipantsKey
		c.ParticipantsKey = &key
	}
	if c.TeamID != nil {
		teamID := *c.TeamID
		c.TeamID = &teamID
	}
	if c.LastMessageAt != nil {
		last := *c.LastMessageAt
		c.LastMessageAt = &last
	}
	return c
}
