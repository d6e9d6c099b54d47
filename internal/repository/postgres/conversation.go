package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.ConversationStore = (*ConversationRepository)(nil)

const conversationColumns = `id, type, participants, participants_key, team_id, created_by,
	retention_policy, encryption_version, last_message_at, created_at, updated_at`

type ConversationRepository struct {
	db *Connection
}

func NewConversationRepository(db *Connection) *ConversationRepository {
	return &ConversationRepository{
		db: db,
	}
}

// Create inserts the conversation. A concurrent creator of the same direct
// pair or team makes the insert fail with ErrConflict.
func (r *ConversationRepository) Create(ctx context.Context, conversation model.Conversation) (model.Conversation, error) {
	query := `
		INSERT INTO conversations (` + conversationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + conversationColumns

	participants := conversation.Participants
	if participants == nil {
		participants = []uuid.UUID{}
	}

	var saved model.Conversation
	err := r.db.retry(ctx, func(ctx context.Context) error {
		var err error
		saved, err = scanConversation(r.db.QueryRow(ctx, query,
			conversation.ID, string(conversation.Type), participants, conversation.ParticipantsKey,
			conversation.TeamID, conversation.CreatedBy, string(conversation.RetentionPolicy),
			conversation.EncryptionVersion, conversation.LastMessageAt, conversation.CreatedAt, conversation.UpdatedAt,
		))
		return err
	})
	if err != nil {
		return model.Conversation{}, mapError("create conversation", err)
	}

	return saved, nil
}

func (r *ConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = $1`
	return r.getOne(ctx, "get conversation", query, id)
}

func (r *ConversationRepository) GetDirectByKey(ctx context.Context, participantsKey string) (model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE type = 'direct' AND participants_key = $1`
	return r.getOne(ctx, "get direct conversation", query, participantsKey)
}

func (r *ConversationRepository) GetTeamByTeamID(ctx context.Context, teamID uuid.UUID) (model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE type = 'team' AND team_id = $1`
	return r.getOne(ctx, "get team conversation", query, teamID)
}

func (r *ConversationRepository) ListForUser(ctx context.Context, filter model.ConversationFilter) ([]model.Conversation, error) {
	query := `
		SELECT ` + conversationColumns + `
		FROM conversations
		WHERE (type = 'direct' AND $1 = ANY(participants))
		   OR (type = 'team' AND ($3 OR team_id = ANY($2)))
		ORDER BY last_message_at DESC NULLS LAST, created_at DESC`

	teamIDs := filter.TeamIDs
	if teamIDs == nil {
		teamIDs = []uuid.UUID{}
	}

	var conversations []model.Conversation
	err := r.db.retry(ctx, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, query, filter.UserID, teamIDs, filter.AllTeams)
		if err != nil {
			return err
		}
		defer rows.Close()

		conversations = conversations[:0]
		for rows.Next() {
			c, err := scanConversation(rows)
			if err != nil {
				return err
			}
			conversations = append(conversations, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, mapError("list conversations", err)
	}

	return conversations, nil
}

func (r *ConversationRepository) UpdateRetention(ctx context.Context, id uuid.UUID, policy model.RetentionPolicy, updatedAt time.Time) (model.Conversation, error) {
	query := `
		UPDATE conversations SET retention_policy = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + conversationColumns

	return r.getOne(ctx, "update retention", query, id, string(policy), updatedAt)
}

func (r *ConversationRepository) TouchLastMessage(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE conversations
		SET last_message_at = GREATEST(COALESCE(last_message_at, $2), $2)
		WHERE id = $1`

	err := r.db.retry(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, id, at)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return mapError("touch conversation", err)
}

func (r *ConversationRepository) getOne(ctx context.Context, op, query string, args ...any) (model.Conversation, error) {
	var conversation model.Conversation
	err := r.db.retry(ctx, func(ctx context.Context) error {
		var err error
		conversation, err = scanConversation(r.db.QueryRow(ctx, query, args...))
		return err
	})
	if err != nil {
		return model.Conversation{}, mapError(op, err)
	}
	return conversation, nil
}

func scanConversation(row pgx.Row) (model.Conversation, error) {
	var c model.Conversation
	err := row.Scan(
		&c.ID, &c.Type, &c.Participants, &c.ParticipantsKey, &c.TeamID, &c.CreatedBy,
		&c.RetentionPolicy, &c.EncryptionVersion, &c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return model.Conversation{}, err
	}
	if len(c.Participants) == 0 {
		c.Participants = nil
	}
	c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
	if c.LastMessageAt != nil {
		last := c.LastMessageAt.UTC()
		c.LastMessageAt = &last
	}
	return c, nil
}
