package model

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DeliveryEventName is the event name live clients receive for a new message.
const DeliveryEventName = "messaging:new"

// DeliveryEvent is pushed to live sessions after a message is stored.
type DeliveryEvent struct {
	ConversationID uuid.UUID       `json:"conversationId"`
	MessageID      uuid.UUID       `json:"messageId"`
	SenderID       uuid.UUID       `json:"senderId"`
	Ciphertext     []byte          `json:"ciphertext"`
	IV             []byte          `json:"iv"`
	AuthTag        []byte          `json:"authTag"`
	Metadata       json.RawMessage `json:"metadata"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// NewDeliveryEvent builds the delivery event of a stored message.
func NewDeliveryEvent(m Message) DeliveryEvent {
	metadata := m.Metadata
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}
	return DeliveryEvent{
		ConversationID: m.ConversationID,
		MessageID:      m.ID,
		SenderID:       m.SenderID,
		Ciphertext:     m.Ciphertext,
		IV:             m.IV,
		AuthTag:        m.AuthTag,
		Metadata:       metadata,
		CreatedAt:      m.CreatedAt,
	}
}

// Publisher pushes delivery events to live channels. Implementations must not
// block on absent or slow subscribers.
type Publisher interface {
	Publish(ctx context.Context, event DeliveryEvent, recipients []uuid.UUID) error
}
