package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/delivery"
	"github.com/dtroode/cipherchat-server/internal/model"
)

// Live opens gate-checked live sessions for transports.
type Live struct {
	authorizer Authorizer
	hub        *delivery.Hub
}

func NewLive(authorizer Authorizer, hub *delivery.Hub) *Live {
	return &Live{authorizer: authorizer, hub: hub}
}

// LiveSession is a live session bound to its owner. Conversation channels
// can only be watched after the access gate admits the owner.
type LiveSession struct {
	user       model.User
	session    *delivery.Session
	authorizer Authorizer
}

// Open starts a session on the user's personal channel.
func (s *Live) Open(_ context.Context, user model.User) (*LiveSession, error) {
	if user.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing user", model.ErrInvalidInput)
	}

	session, err := s.hub.Open(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open live session: %v", model.ErrUnavailable, err)
	}

	return &LiveSession{user: user, session: session, authorizer: s.authorizer}, nil
}

// Watch subscribes to a conversation channel after checking access.
func (l *LiveSession) Watch(ctx context.Context, conversationID uuid.UUID) error {
	conversation, err := l.authorizer.Authorize(ctx, l.user, conversationID)
	if err != nil {
		return err
	}
	if err := l.session.Watch(conversation.ID); err != nil {
		return fmt.Errorf("%w: %v", model.ErrUnavailable, err)
	}
	return nil
}

func (l *LiveSession) Unwatch(conversationID uuid.UUID) error {
	return l.session.Unwatch(conversationID)
}

func (l *LiveSession) Events() <-chan model.DeliveryEvent {
	return l.session.Events()
}

func (l *LiveSession) Close() error {
	return l.session.Close()
}
