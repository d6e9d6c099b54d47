// Package delivery pushes stored messages to connected clients. Events travel
// over a Bus on named channels: one per conversation and one per user.
package delivery

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

const (
	conversationChannelPrefix = "conversation:"
	userChannelPrefix         = "user:"
)

// ConversationChannel names the channel of everyone watching a conversation.
func ConversationChannel(id uuid.UUID) string {
	return conversationChannelPrefix + id.String()
}

// UserChannel names the personal channel of a user.
func UserChannel(id uuid.UUID) string {
	return userChannelPrefix + id.String()
}

// Handler receives the payload published on a channel.
type Handler func(data []byte)

// Subscription is an active channel subscription.
type Subscription interface {
	Unsubscribe() error
}

// Bus is a fire-and-forget publish/subscribe transport. Publishing to a
// channel without subscribers is a no-op.
type Bus interface {
	Publish(ctx context.Context, channel string, data []byte) error
	Subscribe(channel string, handler Handler) (Subscription, error)
	Close() error
}

var _ Bus = (*LocalBus)(nil)

// LocalBus delivers within the process. Handlers run on the publisher's goroutine.
type LocalBus struct {
	mu       sync.RWMutex
	handlers map[string]map[uint64]Handler
	nextID   uint64
	closed   bool
}

func NewLocalBus() *LocalBus {
	return &LocalBus{handlers: make(map[string]map[uint64]Handler)}
}

func (b *LocalBus) Publish(_ context.Context, channel string, data []byte) error {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}
	handlers := make([]Handler, 0, len(b.handlers[channel]))
	for _, h := range b.handlers[channel] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(data)
	}
	return nil
}

func (b *LocalBus) Subscribe(channel string, handler Handler) (Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}

	b.nextID++
	id := b.nextID
	if b.handlers[channel] == nil {
		b.handlers[channel] = make(map[uint64]Handler)
	}
	b.handlers[channel][id] = handler

	return &localSubscription{bus: b, channel: channel, id: id}, nil
}

func (b *LocalBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[string]map[uint64]Handler)
	return nil
}

type localSubscription struct {
	bus     *LocalBus
	channel string
	id      uint64
	once    sync.Once
}

func (s *localSubscription) Unsubscribe() error {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()

		delete(s.bus.handlers[s.channel], s.id)
		if len(s.bus.handlers[s.channel]) == 0 {
			delete(s.bus.handlers, s.channel)
		}
	})
	return nil
}
