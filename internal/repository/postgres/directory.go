package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.Directory = (*DirectoryRepository)(nil)

const userSelect = `
	SELECT u.id, u.name, u.email, u.role, u.avatar_url,
	       COALESCE(array_agg(tm.team_id) FILTER (WHERE tm.team_id IS NOT NULL), '{}')
	FROM users u
	LEFT JOIN team_members tm ON tm.user_id = u.id`

// DirectoryRepository reads users and team memberships mirrored from the
// identity provider.
type DirectoryRepository struct {
	db *Connection
}

func NewDirectoryRepository(db *Connection) *DirectoryRepository {
	return &DirectoryRepository{
		db: db,
	}
}

func (r *DirectoryRepository) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := userSelect + ` WHERE u.id = $1 GROUP BY u.id`

	var user model.User
	err := r.db.retry(ctx, func(ctx context.Context) error {
		var err error
		user, err = scanUser(r.db.QueryRow(ctx, query, id))
		return err
	})
	if err != nil {
		return model.User{}, mapError("get user", err)
	}
	return user, nil
}

func (r *DirectoryRepository) GetUsers(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	query := userSelect + ` WHERE u.id = ANY($1) GROUP BY u.id ORDER BY u.name, u.id`

	var users []model.User
	err := r.db.retry(ctx, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, query, ids)
		if err != nil {
			return err
		}
		defer rows.Close()

		users = users[:0]
		for rows.Next() {
			u, err := scanUser(rows)
			if err != nil {
				return err
			}
			users = append(users, u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, mapError("get users", err)
	}
	return users, nil
}

func (r *DirectoryRepository) ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]uuid.UUID, error) {
	query := `SELECT user_id FROM team_members WHERE team_id = $1 ORDER BY user_id`

	var members []uuid.UUID
	err := r.db.retry(ctx, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, query, teamID)
		if err != nil {
			return err
		}
		members, err = pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
		return err
	})
	if err != nil {
		return nil, mapError("list team members", err)
	}
	return members, nil
}

// PutUser upserts a user and replaces their team memberships.
func (r *DirectoryRepository) PutUser(ctx context.Context, user model.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapError("begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, name, email, role, avatar_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, email = EXCLUDED.email,
			role = EXCLUDED.role, avatar_url = EXCLUDED.avatar_url`,
		user.ID, user.Name, user.Email, string(user.Role), user.AvatarURL)
	if err != nil {
		return mapError("upsert user", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM team_members WHERE user_id = $1`, user.ID); err != nil {
		return mapError("clear team memberships", err)
	}
	for _, teamID := range user.TeamIDs {
		if _, err := tx.Exec(ctx, `INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`, teamID, user.ID); err != nil {
			return mapError("add team membership", err)
		}
	}

	return mapError("commit transaction", tx.Commit(ctx))
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.AvatarURL, &u.TeamIDs); err != nil {
		return model.User{}, err
	}
	if len(u.TeamIDs) == 0 {
		u.TeamIDs = nil
	}
	return u, nil
}
