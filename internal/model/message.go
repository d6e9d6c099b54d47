package model

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit   = 50
	MaxListLimit       = 200
	DefaultSearchLimit = 100
	MaxSearchLimit     = 500

	MaxRecipients     = 1024
	MaxCiphertextSize = 1 << 20
)

// MessageStore defines persistence operations for encrypted messages.
type MessageStore interface {
	// Create inserts a message. When the message carries a RequestID already
	// used by the same sender, the stored message is returned and created is false.
	Create(ctx context.Context, message Message) (stored Message, created bool, err error)
	List(ctx context.Context, conversationID uuid.UUID, query MessageQuery) ([]Message, error)
	Search(ctx context.Context, conversationID uuid.UUID, query MessageSearch) ([]Message, error)
	ListAll(ctx context.Context, conversationID uuid.UUID) ([]Message, error)
	// DeleteExpired removes up to limit messages whose expiry is at or before cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time, limit int) (int64, error)
}

// Message is an immutable encrypted envelope stored for a conversation.
// Ciphertext, IV, AuthTag and Metadata pass through verbatim.
type Message struct {
	ID              uuid.UUID
	ConversationID  uuid.UUID
	SenderID        uuid.UUID
	RecipientIDs    []uuid.UUID
	Ciphertext      []byte
	IV              []byte
	AuthTag         []byte
	DerivedKeyID    *string
	Metadata        json.RawMessage
	RetentionPolicy RetentionPolicy
	ExpiresAt       time.Time
	CreatedAt       time.Time
	RequestID       *uuid.UUID
}

// Envelope is what a client submits to append a message.
type Envelope struct {
	Ciphertext   []byte
	IV           []byte
	AuthTag      []byte
	Recipients   []string
	DerivedKeyID *string
	Metadata     json.RawMessage
	RequestID    *uuid.UUID
}

// Cursor points at a message in newest-first order.
type Cursor struct {
	Before   time.Time
	BeforeID uuid.UUID
}

// MessageQuery selects a page of messages older than an optional cursor.
type MessageQuery struct {
	Limit    int
	Before   *time.Time
	BeforeID *uuid.UUID
}

// MessageSearch filters messages by sender and creation time.
type MessageSearch struct {
	SenderID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
}

// MessagePage is a page of messages plus the cursor for the next one.
type MessagePage struct {
	Messages   []Message
	NextCursor *Cursor
}

// ExportParams contains options for a bulk export.
type ExportParams struct {
	Archive bool
}

// Export is a full dump of a conversation, oldest message first.
type Export struct {
	Conversation Conversation
	Messages     []Message
	Count        int
	FileName     string
	ExportedAt   time.Time
	ArchiveKey   string
	ArchiveURL   string
}
