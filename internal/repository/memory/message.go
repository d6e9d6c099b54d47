package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

type requestKey struct {
	senderID  uuid.UUID
	requestID uuid.UUID
}

type MessageRepository struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]model.Message
	byRequest map[requestKey]uuid.UUID
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		byID:      make(map[uuid.UUID]model.Message),
		byRequest: make(map[requestKey]uuid.UUID),
	}
}

func (r *MessageRepository) Create(_ context.Context, message model.Message) (model.Message, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if message.RequestID != nil {
		key := requestKey{senderID: message.SenderID, requestID: *message.RequestID}
		if id, ok := r.byRequest[key]; ok {
			return cloneMessage(r.byID[id]), false, nil
		}
	}
	if _, ok := r.byID[message.ID]; ok {
		return model.Message{}, false, model.ErrConflict
	}
	if message.RequestID != nil {
		r.byRequest[requestKey{senderID: message.SenderID, requestID: *message.RequestID}] = message.ID
	}

	r.byID[message.ID] = cloneMessage(message)
	return cloneMessage(message), true, nil
}

func (r *MessageRepository) List(_ context.Context, conversationID uuid.UUID, query model.MessageQuery) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.collect(conversationID, func(m model.Message) bool {
		if query.Before == nil {
			return true
		}
		if m.CreatedAt.Before(*query.Before) {
			return true
		}
		// ties on created_at are broken by id so no row is skipped or repeated
		return query.BeforeID != nil && m.CreatedAt.Equal(*query.Before) && compareIDs(m.ID, *query.BeforeID) < 0
	})
	slices.SortFunc(out, newestFirst)
	return limit(out, query.Limit), nil
}

func (r *MessageRepository) Search(_ context.Context, conversationID uuid.UUID, query model.MessageSearch) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.collect(conversationID, func(m model.Message) bool {
		if query.SenderID != nil && m.SenderID != *query.SenderID {
			return false
		}
		if query.From != nil && m.CreatedAt.Before(*query.From) {
			return false
		}
		if query.To != nil && m.CreatedAt.After(*query.To) {
			return false
		}
		return true
	})
	slices.SortFunc(out, newestFirst)
	return limit(out, query.Limit), nil
}

func (r *MessageRepository) ListAll(_ context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.collect(conversationID, func(model.Message) bool { return true })
	slices.SortFunc(out, func(a, b model.Message) int { return newestFirst(b, a) })
	return out, nil
}

func (r *MessageRepository) DeleteExpired(_ context.Context, cutoff time.Time, batch int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, m := range r.byID {
		if batch > 0 && deleted >= int64(batch) {
			break
		}
		if m.ExpiresAt.After(cutoff) {
			continue
		}
		delete(r.byID, id)
		if m.RequestID != nil {
			delete(r.byRequest, requestKey{senderID: m.SenderID, requestID: *m.RequestID})
		}
		deleted++
	}
	return deleted, nil
}

// Len returns the number of stored messages.
func (r *MessageRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

func (r *MessageRepository) collect(conversationID uuid.UUID, keep func(model.Message) bool) []model.Message {
	var out []model.Message
	for _, m := range r.byID {
		if m.ConversationID == conversationID && keep(m) {
			out = append(out, cloneMessage(m))
		}
	}
	return out
}

func newestFirst(a, b model.Message) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return compareIDs(b.ID, a.ID)
}

// compareIDs orders ids bytewise, which matches PostgreSQL's uuid ordering.
func compareIDs(a, b uuid.UUID) int {
	return slices.Compare(a[:], b[:])
}

func limit(messages []model.Message, n int) []model.Message {
	if n > 0 && len(messages) > n {
		return messages[:n]
	}
	return messages
}

func cloneMessage(m model.Message) model.Message {
	m.RecipientIDs = slices.Clone(m.RecipientIDs)
	m.Ciphertext = slices.Clone(m.Ciphertext)
	m.IV = slices.Clone(m.IV)
	m.AuthTag = slices.Clone(m.AuthTag)
	m.Metadata = slices.Clone(m.Metadata)
	if m.DerivedKeyID != nil {
		derived := *m.DerivedKeyID
		m.DerivedKeyID = &derived
	}
	if m.RequestID != nil {
		requestID := *m.RequestID
		m.RequestID = &requestID
	}
	return m
}
