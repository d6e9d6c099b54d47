package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/cipherchat-server/internal/mocks"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/testutil"
)

func TestKeys_RegisterKey(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	user := model.User{ID: uuid.New(), Role: model.RoleMember}

	tests := []struct {
		name      string
		params    model.RegisterKeyParams
		mockSetup func(*servermocks.KeyStore)
		wantErr   error
		check     func(*testing.T, model.DeviceKey)
	}{
		{
			name:   "defaults device and algorithm",
			params: model.RegisterKeyParams{PublicKey: "pk"},
			mockSetup: func(ks *servermocks.KeyStore) {
				ks.On("Upsert", mock.Anything, model.DeviceKey{
					UserID:    user.ID,
					DeviceID:  model.DefaultDeviceID,
					PublicKey: "pk",
					Algorithm: model.DefaultKeyAlgorithm,
					UpdatedAt: now,
				}).Return(model.DeviceKey{UserID: user.ID, DeviceID: model.DefaultDeviceID, PublicKey: "pk", Version: 1}, nil).Once()
			},
			check: func(t *testing.T, k model.DeviceKey) {
				assert.Equal(t, 1, k.Version)
			},
		},
		{
			name:   "keeps explicit device",
			params: model.RegisterKeyParams{DeviceID: "phone", PublicKey: "pk", Algorithm: "p256"},
			mockSetup: func(ks *servermocks.KeyStore) {
				ks.On("Upsert", mock.Anything, mock.MatchedBy(func(k model.DeviceKey) bool {
					return k.DeviceID == "phone" && k.Algorithm == "p256"
				})).Return(model.DeviceKey{DeviceID: "phone", Version: 3}, nil).Once()
			},
			check: func(t *testing.T, k model.DeviceKey) {
				assert.Equal(t, "phone", k.DeviceID)
			},
		},
		{
			name:    "empty public key",
			params:  model.RegisterKeyParams{},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "oversized public key",
			params:  model.RegisterKeyParams{PublicKey: strings.Repeat("k", maxPublicKeySize+1)},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "long device id",
			params:  model.RegisterKeyParams{PublicKey: "pk", DeviceID: strings.Repeat("d", maxDeviceIDLength+1)},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:   "store unavailable",
			params: model.RegisterKeyParams{PublicKey: "pk"},
			mockSetup: func(ks *servermocks.KeyStore) {
				ks.On("Upsert", mock.Anything, mock.Anything).Return(model.DeviceKey{}, model.ErrUnavailable).Once()
			},
			wantErr: model.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keyStore := &servermocks.KeyStore{}
			if tt.mockSetup != nil {
				tt.mockSetup(keyStore)
			}

			svc := NewKeys(keyStore, &servermocks.Directory{}, testutil.MakeNoopLogger())
			svc.clock = func() time.Time { return now }

			key, err := svc.RegisterKey(context.Background(), user, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				tt.check(t, key)
			}
			keyStore.AssertExpectations(t)
		})
	}
}

func TestKeys_LookupKeys(t *testing.T) {
	ctx := context.Background()
	team := uuid.New()
	requester := model.User{ID: uuid.New(), Role: model.RoleMember, TeamIDs: []uuid.UUID{team}}
	teammate := model.User{ID: uuid.New(), Role: model.RoleMember, TeamIDs: []uuid.UUID{team}}
	stranger := model.User{ID: uuid.New(), Role: model.RoleMember, TeamIDs: []uuid.UUID{uuid.New()}}
	admin := model.User{ID: uuid.New(), Role: model.RoleAdmin}
	missing := uuid.New()

	t.Run("filters to visible targets", func(t *testing.T) {
		keyStore := &servermocks.KeyStore{}
		directory := &servermocks.Directory{}

		directory.On("GetUsers", ctx, []uuid.UUID{teammate.ID, stranger.ID, admin.ID, missing}).
			Return([]model.User{teammate, stranger, admin}, nil).Once()
		keyStore.On("GetByUsers", ctx, []uuid.UUID{teammate.ID, admin.ID}).
			Return([]model.DeviceKey{{UserID: teammate.ID}, {UserID: admin.ID}}, nil).Once()

		svc := NewKeys(keyStore, directory, testutil.MakeNoopLogger())
		keys, err := svc.LookupKeys(ctx, requester, []uuid.UUID{teammate.ID, stranger.ID, teammate.ID, admin.ID, missing})
		require.NoError(t, err)
		assert.Len(t, keys, 2)

		directory.AssertExpectations(t)
		keyStore.AssertExpectations(t)
	})

	t.Run("nothing visible", func(t *testing.T) {
		directory := &servermocks.Directory{}
		directory.On("GetUsers", ctx, []uuid.UUID{stranger.ID}).Return([]model.User{stranger}, nil).Once()

		svc := NewKeys(&servermocks.KeyStore{}, directory, testutil.MakeNoopLogger())
		keys, err := svc.LookupKeys(ctx, requester, []uuid.UUID{stranger.ID})
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("empty list", func(t *testing.T) {
		svc := NewKeys(&servermocks.KeyStore{}, &servermocks.Directory{}, testutil.MakeNoopLogger())
		_, err := svc.LookupKeys(ctx, requester, nil)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("too many ids", func(t *testing.T) {
		ids := make([]uuid.UUID, maxLookupUsers+1)
		for i := range ids {
			ids[i] = uuid.New()
		}
		svc := NewKeys(&servermocks.KeyStore{}, &servermocks.Directory{}, testutil.MakeNoopLogger())
		_, err := svc.LookupKeys(ctx, requester, ids)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestKeys_ReRegisterStampsRotation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	user := f.user(model.RoleMember)

	first, err := f.keys.RegisterKey(ctx, user, model.RegisterKeyParams{DeviceID: "laptop", PublicKey: "pk"})
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), first.LastRotatedAt)

	f.clock.Advance(time.Hour)

	again, err := f.keys.RegisterKey(ctx, user, model.RegisterKeyParams{DeviceID: "laptop", PublicKey: "pk"})
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), again.LastRotatedAt)
	assert.Equal(t, 1, again.Version)
	assert.Equal(t, first.CreatedAt, again.CreatedAt)

	f.clock.Advance(time.Hour)

	rotated, err := f.keys.RegisterKey(ctx, user, model.RegisterKeyParams{DeviceID: "laptop", PublicKey: "pk2"})
	require.NoError(t, err)
	assert.Equal(t, f.clock.Now(), rotated.LastRotatedAt)
	assert.Equal(t, 2, rotated.Version)
}
