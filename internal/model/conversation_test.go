package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionPolicy_Duration(t *testing.T) {
	tests := []struct {
		name    string
		policy  RetentionPolicy
		want    time.Duration
		wantErr bool
	}{
		{name: "seven days", policy: Retention7Days, want: 168 * time.Hour},
		{name: "thirty days", policy: Retention30Days, want: 720 * time.Hour},
		{name: "unsupported", policy: "90d", wantErr: true},
		{name: "empty", policy: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.Duration()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRetention(t *testing.T) {
	p, err := ParseRetention("")
	require.NoError(t, err)
	assert.Equal(t, Retention7Days, p)

	p, err = ParseRetention("30d")
	require.NoError(t, err)
	assert.Equal(t, Retention30Days, p)

	_, err = ParseRetention("1y")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParticipantsKey_OrderIndependent(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	assert.Equal(t, ParticipantsKey(a, b), ParticipantsKey(b, a))
	assert.Equal(t, a.String()+":"+b.String(), ParticipantsKey(b, a))
}

func TestNormalizeConversation(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	teamID := uuid.New()

	t.Run("direct sorts participants and computes key", func(t *testing.T) {
		c, err := NormalizeConversation(Conversation{
			Type:         ConversationTypeDirect,
			Participants: []uuid.UUID{b, a},
			TeamID:       &teamID,
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, c.Participants)
		require.NotNil(t, c.ParticipantsKey)
		assert.Equal(t, ParticipantsKey(a, b), *c.ParticipantsKey)
		assert.Nil(t, c.TeamID)
		assert.Equal(t, DefaultRetention, c.RetentionPolicy)
		assert.Equal(t, 1, c.EncryptionVersion)
	})

	t.Run("direct rejects self pair", func(t *testing.T) {
		_, err := NormalizeConversation(Conversation{Type: ConversationTypeDirect, Participants: []uuid.UUID{a, a}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("direct rejects wrong participant count", func(t *testing.T) {
		_, err := NormalizeConversation(Conversation{Type: ConversationTypeDirect, Participants: []uuid.UUID{a}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("team clears participants", func(t *testing.T) {
		key := "x"
		c, err := NormalizeConversation(Conversation{
			Type:            ConversationTypeTeam,
			TeamID:          &teamID,
			Participants:    []uuid.UUID{a, b},
			ParticipantsKey: &key,
			RetentionPolicy: Retention30Days,
		})
		require.NoError(t, err)
		assert.Nil(t, c.Participants)
		assert.Nil(t, c.ParticipantsKey)
		assert.Equal(t, Retention30Days, c.RetentionPolicy)
	})

	t.Run("team requires team id", func(t *testing.T) {
		_, err := NormalizeConversation(Conversation{Type: ConversationTypeTeam})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NormalizeConversation(Conversation{Type: "group"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad retention", func(t *testing.T) {
		_, err := NormalizeConversation(Conversation{Type: ConversationTypeTeam, TeamID: &teamID, RetentionPolicy: "1d"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestConversation_OtherParticipant(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	c := Conversation{Type: ConversationTypeDirect, Participants: []uuid.UUID{a, b}}

	other, ok := c.OtherParticipant(a)
	assert.True(t, ok)
	assert.Equal(t, b, other)

	teamID := uuid.New()
	_, ok = Conversation{Type: ConversationTypeTeam, TeamID: &teamID}.OtherParticipant(a)
	assert.False(t, ok)
}
