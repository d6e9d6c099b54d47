package model

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// Role is a user's global role.
type Role string

const (
	// RoleAdmin bypasses team-membership checks.
	RoleAdmin Role = "admin"
	// RoleMember is a regular user.
	RoleMember Role = "member"
)

// User is the principal on whose behalf an operation runs, plus the profile
// fields served by participant listings.
type User struct {
	ID        uuid.UUID
	Role      Role
	TeamIDs   []uuid.UUID
	Name      string
	Email     string
	AvatarURL string
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// InTeam reports whether the user belongs to the team.
func (u User) InTeam(teamID uuid.UUID) bool {
	return teamID != uuid.Nil && slices.Contains(u.TeamIDs, teamID)
}

// Directory is the read side of the external identity and team directory.
type Directory interface {
	GetUser(ctx context.Context, id uuid.UUID) (User, error)
	GetUsers(ctx context.Context, ids []uuid.UUID) ([]User, error)
	ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error)
}
