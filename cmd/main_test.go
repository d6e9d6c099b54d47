package main

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/cipherchat-server/internal/config"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/testutil"
)

func TestOpenStores_MemoryDirectoryFromSeed(t *testing.T) {
	ctx := context.Background()
	admin := uuid.New()

	cfg := &config.Config{
		Database:      config.Database{Driver: config.DriverMemory},
		DirectorySeed: `[{"id": "` + admin.String() + `", "role": "admin", "name": "Ada"}]`,
	}

	st, closeStores, err := openStores(ctx, cfg, testutil.MakeNoopLogger())
	require.NoError(t, err)
	defer closeStores()

	user, err := st.directory.GetUser(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.Equal(t, "Ada", user.Name)

	_, err = st.directory.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestOpenStores_MemoryInvalidSeed(t *testing.T) {
	cfg := &config.Config{
		Database:      config.Database{Driver: config.DriverMemory},
		DirectorySeed: `{"id": "not-a-list"}`,
	}

	_, _, err := openStores(context.Background(), cfg, testutil.MakeNoopLogger())
	require.Error(t, err)
}
