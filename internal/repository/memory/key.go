package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/model"
)

var _ model.KeyStore = (*KeyRepository)(nil)

type deviceKey struct {
	userID   uuid.UUID
	deviceID string
}

type KeyRepository struct {
	mu   sync.RWMutex
	keys map[deviceKey]model.DeviceKey
}

func NewKeyRepository() *KeyRepository {
	return &KeyRepository{keys: make(map[deviceKey]model.DeviceKey)}
}

// Upsert stores the key. Every registration moves the rotation time; the
// version is bumped only when the public key changes.
func (r *KeyRepository) Upsert(_ context.Context, key model.DeviceKey) (model.DeviceKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := deviceKey{userID: key.UserID, deviceID: key.DeviceID}
	existing, ok := r.keys[id]
	if !ok {
		key.Version = 1
		key.LastRotatedAt = key.UpdatedAt
		key.CreatedAt = key.UpdatedAt
		r.keys[id] = key
		return key, nil
	}

	if existing.PublicKey != key.PublicKey {
		existing.Version++
	}
	existing.LastRotatedAt = key.UpdatedAt
	existing.PublicKey = key.PublicKey
	existing.Algorithm = key.Algorithm
	existing.UpdatedAt = key.UpdatedAt
	r.keys[id] = existing
	return existing, nil
}

func (r *KeyRepository) GetByUsers(_ context.Context, userIDs []uuid.UUID) ([]model.DeviceKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[uuid.UUID]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}

	var out []model.DeviceKey
	for _, k := range r.keys {
		if _, ok := wanted[k.UserID]; ok {
			out = append(out, k)
		}
	}
	return out, nil
}

func (r *KeyRepository) LatestByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]model.DeviceKey, error) {
	keys, err := r.GetByUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]model.DeviceKey, len(userIDs))
	for _, k := range keys {
		current, ok := latest[k.UserID]
		if !ok || k.LastRotatedAt.After(current.LastRotatedAt) {
			latest[k.UserID] = k
		}
	}
	return latest, nil
}
