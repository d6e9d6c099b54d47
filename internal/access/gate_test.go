package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/cipherchat-server/internal/model"
)

func TestCanAccessConversation(t *testing.T) {
	t1, t2 := uuid.New(), uuid.New()
	u1 := model.User{ID: uuid.New(), Role: model.RoleMember, TeamIDs: []uuid.UUID{t1}}
	u2 := model.User{ID: uuid.New(), Role: model.RoleMember, TeamIDs: []uuid.UUID{t1}}
	u3 := model.User{ID: uuid.New(), Role: model.RoleMember, TeamIDs: []uuid.UUID{t2}}
	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin}

	direct := model.Conversation{ID: uuid.New(), Type: model.ConversationTypeDirect, Participants: []uuid.UUID{u1.ID, u2.ID}}
	team := model.Conversation{ID: uuid.New(), Type: model.ConversationTypeTeam, TeamID: &t1}

	tests := []struct {
		name         string
		user         model.User
		conversation model.Conversation
		want         bool
	}{
		{name: "direct participant", user: u1, conversation: direct, want: true},
		{name: "other direct participant", user: u2, conversation: direct, want: true},
		{name: "direct outsider", user: u3, conversation: direct, want: false},
		{name: "direct admin", user: admin, conversation: direct, want: true},
		{name: "team member", user: u1, conversation: team, want: true},
		{name: "team outsider", user: u3, conversation: team, want: false},
		{name: "team admin", user: admin, conversation: team, want: true},
		{name: "nil user", user: model.User{}, conversation: direct, want: false},
		{name: "nil admin id", user: model.User{Role: model.RoleAdmin}, conversation: team, want: false},
		{name: "zero conversation", user: admin, conversation: model.Conversation{}, want: false},
		{name: "unknown type", user: admin, conversation: model.Conversation{ID: uuid.New(), Type: "group"}, want: false},
		{name: "team without team id", user: admin, conversation: model.Conversation{ID: uuid.New(), Type: model.ConversationTypeTeam}, want: false},
		{name: "direct with one participant", user: u1, conversation: model.Conversation{ID: uuid.New(), Type: model.ConversationTypeDirect, Participants: []uuid.UUID{u1.ID}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessConversation(tt.user, tt.conversation))
			// Deterministic on repeated calls.
			assert.Equal(t, tt.want, CanAccessConversation(tt.user, tt.conversation))
		})
	}
}

func TestCanAccessConversation_LostTeamKeepsDirectAccess(t *testing.T) {
	u1 := model.User{ID: uuid.New()}
	u2 := model.User{ID: uuid.New()}
	direct := model.Conversation{ID: uuid.New(), Type: model.ConversationTypeDirect, Participants: []uuid.UUID{u1.ID, u2.ID}}

	assert.True(t, CanAccessConversation(u1, direct))
	assert.False(t, CanMessageDirectly(u1, u2))
}

func TestCanMessageDirectly(t *testing.T) {
	t1, t2 := uuid.New(), uuid.New()
	u1 := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t1}}
	u2 := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t1, t2}}
	u3 := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t2}}
	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin}

	assert.True(t, CanMessageDirectly(u1, u2))
	assert.False(t, CanMessageDirectly(u1, u3))
	assert.True(t, CanMessageDirectly(u1, admin))
	assert.True(t, CanMessageDirectly(admin, u3))
	assert.False(t, CanMessageDirectly(u1, u1))
	assert.False(t, CanMessageDirectly(u1, model.User{}))
}

func TestCanSeeKeys(t *testing.T) {
	t1, t2 := uuid.New(), uuid.New()
	u1 := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t1}}
	u2 := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t1}}
	u3 := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t2}}
	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin}

	assert.True(t, CanSeeKeys(u1, u1))
	assert.True(t, CanSeeKeys(u1, u2))
	assert.False(t, CanSeeKeys(u1, u3))
	assert.True(t, CanSeeKeys(admin, u3))
	assert.True(t, CanSeeKeys(u3, admin))
	assert.False(t, CanSeeKeys(model.User{}, u1))
}

func TestCanChangeRetention(t *testing.T) {
	t1 := uuid.New()
	creator := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t1}}
	member := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t1}}
	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin}
	outsiderCreator := model.User{ID: creator.ID}

	team := model.Conversation{ID: uuid.New(), Type: model.ConversationTypeTeam, TeamID: &t1, CreatedBy: creator.ID}

	assert.True(t, CanChangeRetention(creator, team))
	assert.False(t, CanChangeRetention(member, team))
	assert.True(t, CanChangeRetention(admin, team))
	assert.False(t, CanChangeRetention(outsiderCreator, team))
}

func TestCanJoinTeamConversation(t *testing.T) {
	t1 := uuid.New()
	member := model.User{ID: uuid.New(), TeamIDs: []uuid.UUID{t1}}
	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin}

	assert.True(t, CanJoinTeamConversation(member, t1))
	assert.False(t, CanJoinTeamConversation(member, uuid.New()))
	assert.True(t, CanJoinTeamConversation(admin, uuid.New()))
	assert.False(t, CanJoinTeamConversation(member, uuid.Nil))
}
