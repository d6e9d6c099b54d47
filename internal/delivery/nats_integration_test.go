//go:build integration

package delivery

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/cipherchat-server/internal/testutil"
)

func TestNATSBus_CrossNodeDelivery(t *testing.T) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "nats:2.10-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForListeningPort("4222/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)
	url := fmt.Sprintf("nats://%s:%s", host, port.Port())

	log := testutil.MakeNoopLogger()
	publisherBus, err := NewNATSBus(url, "test", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = publisherBus.Close() })
	subscriberBus, err := NewNATSBus(url, "test", log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = subscriberBus.Close() })

	user := uuid.New()
	session, err := NewHub(subscriberBus, nil, log).Open(user)
	require.NoError(t, err)
	defer session.Close()
	require.NoError(t, subscriberBus.Flush(ctx))

	event := newEvent(uuid.New())
	require.NoError(t, NewFanout(publisherBus).Publish(ctx, event, []uuid.UUID{user}))
	require.NoError(t, publisherBus.Flush(ctx))

	got, ok := receive(t, session)
	require.True(t, ok)
	require.Equal(t, event.MessageID, got.MessageID)
}
