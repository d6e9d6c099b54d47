package delivery

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/dtroode/cipherchat-server/internal/model"
)

// Event is a delivery event as received by a session.
type Event = model.DeliveryEvent

// Session is one live connection of a user. It receives events from the
// user's personal channel and from every watched conversation, each message
// at most once.
type Session struct {
	userID uuid.UUID
	hub    *Hub
	events chan Event
	seen   *lru.Cache

	mu       sync.Mutex
	personal Subscription
	watched  map[uuid.UUID]Subscription
	closed   bool
}

// Events is closed when the session closes.
func (s *Session) Events() <-chan Event {
	return s.events
}

// Watch subscribes the session to a conversation channel. The caller is
// responsible for checking access first.
func (s *Session) Watch(conversationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	if _, ok := s.watched[conversationID]; ok {
		return nil
	}

	sub, err := s.hub.bus.Subscribe(ConversationChannel(conversationID), s.deliver)
	if err != nil {
		return fmt.Errorf("failed to watch conversation: %w", err)
	}
	s.watched[conversationID] = sub
	return nil
}

func (s *Session) Unwatch(conversationID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.watched[conversationID]
	if !ok {
		return nil
	}
	delete(s.watched, conversationID)
	return sub.Unsubscribe()
}

// Close unsubscribes everything and closes the events channel. It is safe to
// call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.personal != nil {
		errs = append(errs, s.personal.Unsubscribe())
	}
	for id, sub := range s.watched {
		errs = append(errs, sub.Unsubscribe())
		delete(s.watched, id)
	}
	close(s.events)

	s.hub.metrics.SessionClosed()
	s.hub.logger.Debug("live session closed", "user_id", s.userID)

	return errors.Join(errs...)
}

// deliver never blocks: events that do not fit in the buffer are dropped.
func (s *Session) deliver(data []byte) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		s.hub.logger.Warn("discarding malformed delivery event", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	if seen, _ := s.seen.ContainsOrAdd(event.MessageID, struct{}{}); seen {
		return
	}

	select {
	case s.events <- event:
		s.hub.metrics.Delivered()
	default:
		s.hub.metrics.Dropped()
		s.hub.logger.Warn("session buffer full, dropping event", "user_id", s.userID, "message_id", event.MessageID)
	}
}
