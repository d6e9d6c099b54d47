package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/cipherchat-server/internal/access"
	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/model"
)

const (
	maxPublicKeySize  = 8 << 10
	maxDeviceIDLength = 128
	maxLookupUsers    = 100
)

// Keys is the key directory: devices publish public keys here and peers
// fetch them to encrypt for each other.
type Keys struct {
	keyStore  model.KeyStore
	directory model.Directory
	logger    *logger.Logger
	clock     func() time.Time
}

func NewKeys(keyStore model.KeyStore, directory model.Directory, logger *logger.Logger) *Keys {
	return &Keys{
		keyStore:  keyStore,
		directory: directory,
		logger:    logger,
		clock:     utcNow,
	}
}

// RegisterKey publishes or rotates the public key of one of the user's devices.
func (s *Keys) RegisterKey(ctx context.Context, user model.User, params model.RegisterKeyParams) (model.DeviceKey, error) {
	if user.ID == uuid.Nil {
		return model.DeviceKey{}, fmt.Errorf("%w: missing user", model.ErrInvalidInput)
	}
	if params.PublicKey == "" {
		return model.DeviceKey{}, fmt.Errorf("%w: public key is required", model.ErrInvalidInput)
	}
	if len(params.PublicKey) > maxPublicKeySize {
		return model.DeviceKey{}, fmt.Errorf("%w: public key exceeds %d bytes", model.ErrInvalidInput, maxPublicKeySize)
	}
	if len(params.DeviceID) > maxDeviceIDLength {
		return model.DeviceKey{}, fmt.Errorf("%w: device id exceeds %d characters", model.ErrInvalidInput, maxDeviceIDLength)
	}

	deviceID := params.DeviceID
	if deviceID == "" {
		deviceID = model.DefaultDeviceID
	}
	algorithm := params.Algorithm
	if algorithm == "" {
		algorithm = model.DefaultKeyAlgorithm
	}

	key, err := s.keyStore.Upsert(ctx, model.DeviceKey{
		UserID:    user.ID,
		DeviceID:  deviceID,
		PublicKey: params.PublicKey,
		Algorithm: algorithm,
		UpdatedAt: s.clock(),
	})
	if err != nil {
		return model.DeviceKey{}, fmt.Errorf("failed to store device key: %w", err)
	}

	s.logger.Debug("device key registered", "user_id", user.ID, "device_id", deviceID, "version", key.Version)

	return key, nil
}

// LookupKeys returns the device keys of the targets the requester may see.
// Targets that are unknown or not visible are left out without an error.
func (s *Keys) LookupKeys(ctx context.Context, requester model.User, userIDs []uuid.UUID) ([]model.DeviceKey, error) {
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one user id is required", model.ErrInvalidInput)
	}
	if len(userIDs) > maxLookupUsers {
		return nil, fmt.Errorf("%w: at most %d user ids are allowed", model.ErrInvalidInput, maxLookupUsers)
	}

	targets, err := s.directory.GetUsers(ctx, uniqueIDs(userIDs))
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve users: %w", err)
	}

	visible := make([]uuid.UUID, 0, len(targets))
	for _, target := range targets {
		if access.CanSeeKeys(requester, target) {
			visible = append(visible, target.ID)
		}
	}
	if len(visible) == 0 {
		return []model.DeviceKey{}, nil
	}

	keys, err := s.keyStore.GetByUsers(ctx, visible)
	if err != nil {
		return nil, fmt.Errorf("failed to get device keys: %w", err)
	}

	return keys, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
