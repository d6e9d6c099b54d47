// Package access holds every authorization rule of the messaging subsystem.
// Services consult it before touching a conversation or its messages; no other
// package checks roles or memberships on its own.
package access

import (
	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/model"
)

// CanAccessConversation decides whether user may read or write conversation.
// It has no side effects and denies anything it cannot positively allow.
func CanAccessConversation(user model.User, conversation model.Conversation) bool {
	if user.ID == uuid.Nil || conversation.ID == uuid.Nil {
		return false
	}

	switch conversation.Type {
	case model.ConversationTypeDirect:
		if len(conversation.Participants) != 2 {
			return false
		}
		return user.IsAdmin() || conversation.HasParticipant(user.ID)
	case model.ConversationTypeTeam:
		if conversation.TeamID == nil || *conversation.TeamID == uuid.Nil {
			return false
		}
		return user.IsAdmin() || user.InTeam(*conversation.TeamID)
	default:
		return false
	}
}

// CanMessageDirectly decides whether a direct conversation between a and b
// may be opened: either is an admin, or they share a team.
func CanMessageDirectly(a, b model.User) bool {
	if a.ID == uuid.Nil || b.ID == uuid.Nil || a.ID == b.ID {
		return false
	}
	return a.IsAdmin() || b.IsAdmin() || SharesTeam(a, b)
}

// CanJoinTeamConversation decides whether user may open the conversation of teamID.
func CanJoinTeamConversation(user model.User, teamID uuid.UUID) bool {
	if user.ID == uuid.Nil || teamID == uuid.Nil {
		return false
	}
	return user.IsAdmin() || user.InTeam(teamID)
}

// CanSeeKeys decides whether requester may fetch the public keys of target.
func CanSeeKeys(requester, target model.User) bool {
	if requester.ID == uuid.Nil || target.ID == uuid.Nil {
		return false
	}
	if requester.ID == target.ID {
		return true
	}
	return requester.IsAdmin() || target.IsAdmin() || SharesTeam(requester, target)
}

// CanChangeRetention decides whether user may change the retention policy.
// Only the creator or an admin may, and only if they can access the conversation.
func CanChangeRetention(user model.User, conversation model.Conversation) bool {
	if !CanAccessConversation(user, conversation) {
		return false
	}
	return user.IsAdmin() || conversation.CreatedBy == user.ID
}

// SharesTeam reports whether a and b belong to at least one common team.
func SharesTeam(a, b model.User) bool {
	if len(a.TeamIDs) == 0 || len(b.TeamIDs) == 0 {
		return false
	}
	teams := make(map[uuid.UUID]struct{}, len(a.TeamIDs))
	for _, id := range a.TeamIDs {
		teams[id] = struct{}{}
	}
	for _, id := range b.TeamIDs {
		if id == uuid.Nil {
			continue
		}
		if _, ok := teams[id]; ok {
			return true
		}
	}
	return false
}
