package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultDeviceID is used when a client registers a key without a device id.
	DefaultDeviceID = "default"
	// DefaultKeyAlgorithm is used when a client omits the algorithm tag.
	DefaultKeyAlgorithm = "x25519-aes-gcm"
)

// KeyStore defines persistence operations for device public keys.
type KeyStore interface {
	Upsert(ctx context.Context, key DeviceKey) (DeviceKey, error)
	GetByUsers(ctx context.Context, userIDs []uuid.UUID) ([]DeviceKey, error)
	LatestByUsers(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]DeviceKey, error)
}

// DeviceKey is the public key material one device of a user publishes.
// The server never interprets PublicKey.
type DeviceKey struct {
	UserID        uuid.UUID
	DeviceID      string
	PublicKey     string
	Algorithm     string
	Version       int
	LastRotatedAt time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RegisterKeyParams contains parameters to register or rotate a device key.
type RegisterKeyParams struct {
	DeviceID  string
	PublicKey string
	Algorithm string
}
