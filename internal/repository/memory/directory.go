package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.Directory = (*Directory)(nil)

// Directory is a writable in-memory identity directory.
type Directory struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
}

func NewDirectory() *Directory {
	return &Directory{users: make(map[uuid.UUID]model.User)}
}

type seedUser struct {
	ID        uuid.UUID   `json:"id"`
	Role      model.Role  `json:"role"`
	TeamIDs   []uuid.UUID `json:"teamIds"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	AvatarURL string      `json:"avatarUrl"`
}

// LoadDirectory builds a directory from a JSON array of users. A missing role
// reads as member.
func LoadDirectory(r io.Reader) (*Directory, error) {
	var users []seedUser
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to decode directory seed: %w", err)
	}

	d := NewDirectory()
	for i, u := range users {
		if u.ID == uuid.Nil {
			return nil, fmt.Errorf("directory seed entry %d: missing id", i)
		}
		switch u.Role {
		case model.RoleAdmin, model.RoleMember:
		case "":
			u.Role = model.RoleMember
		default:
			return nil, fmt.Errorf("directory seed entry %d: unknown role %q", i, u.Role)
		}
		d.PutUser(model.User{
			ID:        u.ID,
			Role:      u.Role,
			TeamIDs:   u.TeamIDs,
			Name:      u.Name,
			Email:     u.Email,
			AvatarURL: u.AvatarURL,
		})
	}
	return d, nil
}

// PutUser adds or replaces a user.
func (d *Directory) PutUser(user model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	user.TeamIDs = slices.Clone(user.TeamIDs)
	d.users[user.ID] = user
}

// SetTeams replaces the team memberships of a user.
func (d *Directory) SetTeams(userID uuid.UUID, teamIDs ...uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[userID]
	if !ok {
		return
	}
	user.TeamIDs = slices.Clone(teamIDs)
	d.users[userID] = user
}

func (d *Directory) GetUser(_ context.Context, id uuid.UUID) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	user.TeamIDs = slices.Clone(user.TeamIDs)
	return user, nil
}

func (d *Directory) GetUsers(_ context.Context, ids []uuid.UUID) ([]model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := d.users[id]; ok {
			user.TeamIDs = slices.Clone(user.TeamIDs)
			out = append(out, user)
		}
	}
	return out, nil
}

func (d *Directory) ListTeamMembers(_ context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []uuid.UUID
	for _, user := range d.users {
		if user.InTeam(teamID) {
			out = append(out, user.ID)
		}
	}
	slices.SortFunc(out, compareIDs)
	return out, nil
}
