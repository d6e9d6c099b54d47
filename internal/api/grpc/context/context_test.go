package context

import (
	stdctx "context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_WithUserID(t *testing.T) {
	m := NewManager()
	uid := uuid.New()
	ctx := m.WithUserID(stdctx.Background(), uid)

	got, ok := m.UserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, uid, got)
}

func TestManager_UserID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.UserID(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_IgnoresRequestMetadata(t *testing.T) {
	m := NewManager()
	md := metadata.New(map[string]string{"user_id": uuid.NewString()})
	ctx := metadata.NewIncomingContext(stdctx.Background(), md)

	_, ok := m.UserID(ctx)
	assert.False(t, ok)
}

func TestManager_NilUserID(t *testing.T) {
	m := NewManager()
	ctx := m.WithUserID(stdctx.Background(), uuid.Nil)
	_, ok := m.UserID(ctx)
	assert.False(t, ok)
}
