package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.MessageStore = (*MessageRepository)(nil)

const messageColumns = `id, conversation_id, sender_id, recipient_ids, ciphertext, iv, auth_tag,
	derived_key_id, metadata, retention_policy, expires_at, created_at, request_id`

type MessageRepository struct {
	db *Connection
}

func NewMessageRepository(db *Connection) *MessageRepository {
	return &MessageRepository{
		db: db,
	}
}

// Create is never retried: a lost acknowledgement could otherwise store the
// message twice. Idempotent replays are keyed by (sender_id, request_id).
func (r *MessageRepository) Create(ctx context.Context, message model.Message) (model.Message, bool, error) {
	query := `
		INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (sender_id, request_id) WHERE request_id IS NOT NULL DO NOTHING
		RETURNING ` + messageColumns

	recipients := message.RecipientIDs
	if recipients == nil {
		recipients = []uuid.UUID{}
	}
	metadata := []byte(message.Metadata)
	if len(metadata) == 0 {
		metadata = []byte(`{}`)
	}

	saved, err := scanMessage(r.db.QueryRow(ctx, query,
		message.ID, message.ConversationID, message.SenderID, recipients,
		message.Ciphertext, message.IV, message.AuthTag, message.DerivedKeyID, string(metadata),
		string(message.RetentionPolicy), message.ExpiresAt, message.CreatedAt, message.RequestID,
	))
	if err == nil {
		return saved, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) || message.RequestID == nil {
		return model.Message{}, false, mapError("create message", err)
	}

	existing, err := r.getByRequest(ctx, message.SenderID, *message.RequestID)
	if err != nil {
		return model.Message{}, false, err
	}
	return existing, false, nil
}

func (r *MessageRepository) List(ctx context.Context, conversationID uuid.UUID, query model.MessageQuery) ([]model.Message, error) {
	sql := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE conversation_id = $1
		  AND ($2::timestamptz IS NULL
		       OR created_at < $2
		       OR ($3::uuid IS NOT NULL AND created_at = $2 AND id < $3))
		ORDER BY created_at DESC, id DESC
		LIMIT $4`

	return r.query(ctx, "list messages", sql, conversationID, query.Before, query.BeforeID, query.Limit)
}

func (r *MessageRepository) Search(ctx context.Context, conversationID uuid.UUID, query model.MessageSearch) ([]model.Message, error) {
	sql := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE conversation_id = $1
		  AND ($2::uuid IS NULL OR sender_id = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at <= $4)
		ORDER BY created_at DESC, id DESC
		LIMIT $5`

	return r.query(ctx, "search messages", sql, conversationID, query.SenderID, query.From, query.To, query.Limit)
}

func (r *MessageRepository) ListAll(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	sql := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at ASC, id ASC`

	return r.query(ctx, "export messages", sql, conversationID)
}

// DeleteExpired removes at most limit messages that expired at or before cutoff.
func (r *MessageRepository) DeleteExpired(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	query := `
		DELETE FROM messages
		WHERE id IN (
			SELECT id FROM messages
			WHERE expires_at <= $1
			ORDER BY expires_at
			LIMIT $2
		)`

	var deleted int64
	err := r.db.retry(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, cutoff, limit)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, mapError("delete expired messages", err)
	}

	return deleted, nil
}

func (r *MessageRepository) getByRequest(ctx context.Context, senderID, requestID uuid.UUID) (model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE sender_id = $1 AND request_id = $2`

	var message model.Message
	err := r.db.retry(ctx, func(ctx context.Context) error {
		var err error
		message, err = scanMessage(r.db.QueryRow(ctx, query, senderID, requestID))
		return err
	})
	if err != nil {
		return model.Message{}, mapError("get message by request id", err)
	}
	return message, nil
}

func (r *MessageRepository) query(ctx context.Context, op, sql string, args ...any) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.retry(ctx, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		messages = messages[:0]
		for rows.Next() {
			m, err := scanMessage(rows)
			if err != nil {
				return err
			}
			messages = append(messages, m)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, mapError(op, err)
	}
	return messages, nil
}

func scanMessage(row pgx.Row) (model.Message, error) {
	var (
		m        model.Message
		metadata []byte
	)
	err := row.Scan(
		&m.ID, &m.ConversationID, &m.SenderID, &m.RecipientIDs, &m.Ciphertext, &m.IV, &m.AuthTag,
		&m.DerivedKeyID, &metadata, &m.RetentionPolicy, &m.ExpiresAt, &m.CreatedAt, &m.RequestID,
	)
	if err != nil {
		return model.Message{}, err
	}
	m.Metadata = metadata
	m.ExpiresAt, m.CreatedAt = m.ExpiresAt.UTC(), m.CreatedAt.UTC()
	return m, nil
}
