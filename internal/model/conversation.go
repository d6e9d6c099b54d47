package model

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ConversationStore defines persistence operations for conversations.
type ConversationStore interface {
	// Create inserts a conversation and returns ErrConflict when a direct pair
	// or team already has one.
	Create(ctx context.Context, conversation Conversation) (Conversation, error)
	GetByID(ctx context.Context, id uuid.UUID) (Conversation, error)
	GetDirectByKey(ctx context.Context, participantsKey string) (Conversation, error)
	GetTeamByTeamID(ctx context.Context, teamID uuid.UUID) (Conversation, error)
	ListForUser(ctx context.Context, filter ConversationFilter) ([]Conversation, error)
	UpdateRetention(ctx context.Context, id uuid.UUID, policy RetentionPolicy, updatedAt time.Time) (Conversation, error)
	TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error
}

// ConversationType enumerates conversation kinds.
type ConversationType string

const (
	// ConversationTypeDirect is a conversation between exactly two users.
	ConversationTypeDirect ConversationType = "direct"
	// ConversationTypeTeam is the single conversation of a team.
	ConversationTypeTeam ConversationType = "team"
)

// RetentionPolicy is how long messages live before the sweep removes them.
type RetentionPolicy string

const (
	Retention7Days  RetentionPolicy = "7d"
	Retention30Days RetentionPolicy = "30d"

	// DefaultRetention applies when a client does not ask for a policy.
	DefaultRetention = Retention7Days
)

// Duration returns the lifetime of a message stored under the policy.
func (p RetentionPolicy) Duration() (time.Duration, error) {
	switch p {
	case Retention7Days:
		return 7 * 24 * time.Hour, nil
	case Retention30Days:
		return 30 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("%w: unsupported retention policy %q", ErrInvalidInput, string(p))
	}
}

// ParseRetention validates a client supplied policy. An empty value yields
// the default policy.
func ParseRetention(value string) (RetentionPolicy, error) {
	if value == "" {
		return DefaultRetention, nil
	}
	p := RetentionPolicy(value)
	if _, err := p.Duration(); err != nil {
		return "", err
	}
	return p, nil
}

// participantsKeySeparator joins the two sorted participant ids.
const participantsKeySeparator = ":"

// Conversation is a channel of message exchange.
type Conversation struct {
	ID                uuid.UUID
	Type              ConversationType
	Participants      []uuid.UUID
	ParticipantsKey   *string
	TeamID            *uuid.UUID
	CreatedBy         uuid.UUID
	RetentionPolicy   RetentionPolicy
	EncryptionVersion int
	LastMessageAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ConversationFilter selects the conversations visible in a user's listing.
type ConversationFilter struct {
	UserID   uuid.UUID
	TeamIDs  []uuid.UUID
	AllTeams bool
}

// OtherParticipant returns the participant of a direct conversation that is
// not the viewer.
func (c Conversation) OtherParticipant(viewer uuid.UUID) (uuid.UUID, bool) {
	if c.Type != ConversationTypeDirect {
		return uuid.Nil, false
	}
	for _, id := range c.Participants {
		if id != viewer {
			return id, true
		}
	}
	return uuid.Nil, false
}

// HasParticipant reports whether id is one of the direct participants.
func (c Conversation) HasParticipant(id uuid.UUID) bool {
	return c.Type == ConversationTypeDirect && slices.Contains(c.Participants, id)
}

// ParticipantsKey returns the order-independent identifier of a direct pair.
func ParticipantsKey(a, b uuid.UUID) string {
	ids := []string{a.String(), b.String()}
	slices.Sort(ids)
	return strings.Join(ids, participantsKeySeparator)
}

// NormalizeConversation enforces the shape invariants of a conversation and
// must run before every create or update: direct conversations get exactly
// two distinct, sorted participants and a participants key; team conversations
// get a team id and no participants.
func NormalizeConversation(c Conversation) (Conversation, error) {
	if c.RetentionPolicy == "" {
		c.RetentionPolicy = DefaultRetention
	}
	if _, err := c.RetentionPolicy.Duration(); err != nil {
		return Conversation{}, err
	}
	if c.EncryptionVersion == 0 {
		c.EncryptionVersion = 1
	}

	switch c.Type {
	case ConversationTypeDirect:
		if len(c.Participants) != 2 {
			return Conversation{}, fmt.Errorf("%w: direct conversation needs exactly two participants", ErrInvalidInput)
		}
		a, b := c.Participants[0], c.Participants[1]
		if a == uuid.Nil || b == uuid.Nil || a == b {
			return Conversation{}, fmt.Errorf("%w: direct conversation needs two distinct participants", ErrInvalidInput)
		}
		if a.String() > b.String() {
			a, b = b, a
		}
		key := ParticipantsKey(a, b)
		c.Participants = []uuid.UUID{a, b}
		c.ParticipantsKey = &key
		c.TeamID = nil
	case ConversationTypeTeam:
		if c.TeamID == nil || *c.TeamID == uuid.Nil {
			return Conversation{}, fmt.Errorf("%w: team conversation needs a team id", ErrInvalidInput)
		}
		c.Participants = nil
		c.ParticipantsKey = nil
	default:
		return Conversation{}, fmt.Errorf("%w: unknown conversation type %q", ErrInvalidInput, string(c.Type))
	}

	return c, nil
}

// Participant is a conversation member together with the newest public key
// of any of their devices.
type Participant struct {
	User         User
	PublicKey    *string
	Algorithm    string
	KeyUpdatedAt *time.Time
}
