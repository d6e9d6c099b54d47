package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.KeyStore = (*KeyRepository)(nil)

const keyColumns = `user_id, device_id, public_key, algorithm, version, last_rotated_at, created_at, updated_at`

type KeyRepository struct {
	db *Connection
}

func NewKeyRepository(db *Connection) *KeyRepository {
	return &KeyRepository{
		db: db,
	}
}

// Upsert stores a device key. Every registration stamps last_rotated_at;
// the version is bumped only when the public key changes.
func (r *KeyRepository) Upsert(ctx context.Context, key model.DeviceKey) (model.DeviceKey, error) {
	query := `
		INSERT INTO device_keys (` + keyColumns + `)
		VALUES ($1, $2, $3, $4, 1, $5, $5, $5)
		ON CONFLICT (user_id, device_id) DO UPDATE SET
			version = CASE WHEN device_keys.public_key = EXCLUDED.public_key
				THEN device_keys.version ELSE device_keys.version + 1 END,
			last_rotated_at = EXCLUDED.updated_at,
			public_key = EXCLUDED.public_key,
			algorithm = EXCLUDED.algorithm,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + keyColumns

	var saved model.DeviceKey
	err := r.db.retry(ctx, func(ctx context.Context) error {
		var err error
		saved, err = scanKey(r.db.QueryRow(ctx, query, key.UserID, key.DeviceID, key.PublicKey, key.Algorithm, key.UpdatedAt))
		return err
	})
	if err != nil {
		return model.DeviceKey{}, mapError("upsert device key", err)
	}

	return saved, nil
}

func (r *KeyRepository) GetByUsers(ctx context.Context, userIDs []uuid.UUID) ([]model.DeviceKey, error) {
	query := `
		SELECT ` + keyColumns + `
		FROM device_keys
		WHERE user_id = ANY($1)
		ORDER BY user_id, updated_at DESC`

	return r.query(ctx, "get device keys", query, userIDs)
}

func (r *KeyRepository) LatestByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]model.DeviceKey, error) {
	query := `
		SELECT DISTINCT ON (user_id) ` + keyColumns + `
		FROM device_keys
		WHERE user_id = ANY($1)
		ORDER BY user_id, last_rotated_at DESC, updated_at DESC`

	keys, err := r.query(ctx, "get latest device keys", query, userIDs)
	if err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]model.DeviceKey, len(keys))
	for _, k := range keys {
		latest[k.UserID] = k
	}
	return latest, nil
}

func (r *KeyRepository) query(ctx context.Context, op, query string, userIDs []uuid.UUID) ([]model.DeviceKey, error) {
	var keys []model.DeviceKey
	err := r.db.retry(ctx, func(ctx context.Context) error {
		rows, err := r.db.Query(ctx, query, userIDs)
		if err != nil {
			return err
		}
		defer rows.Close()

		keys = keys[:0]
		for rows.Next() {
			k, err := scanKey(rows)
			if err != nil {
				return err
			}
			keys = append(keys, k)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, mapError(op, err)
	}
	return keys, nil
}

func scanKey(row pgx.Row) (model.DeviceKey, error) {
	var k model.DeviceKey
	err := row.Scan(&k.UserID, &k.DeviceID, &k.PublicKey, &k.Algorithm, &k.Version, &k.LastRotatedAt, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		return model.DeviceKey{}, err
	}
	k.LastRotatedAt, k.CreatedAt, k.UpdatedAt = k.LastRotatedAt.UTC(), k.CreatedAt.UTC(), k.UpdatedAt.UTC()
	return k, nil
}
