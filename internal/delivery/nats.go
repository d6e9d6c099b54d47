package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/dtroode/cipherchat-server/internal/logger"
)

const DefaultSubjectPrefix = "cipherchat"

var _ Bus = (*NATSBus)(nil)

// NATSBus carries channels over core NATS subjects so sessions on any node
// receive events published on any other.
type NATSBus struct {
	nc     *nats.Conn
	prefix string
	logger *logger.Logger
}

// NewNATSBus connects to the NATS server at url.
func NewNATSBus(url, prefix string, logger *logger.Logger) (*NATSBus, error) {
	nc, err := nats.Connect(url,
		nats.Name("cipherchat-server"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return NewNATSBusFromConn(nc, prefix, logger), nil
}

// NewNATSBusFromConn wraps an established connection.
func NewNATSBusFromConn(nc *nats.Conn, prefix string, logger *logger.Logger) *NATSBus {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSBus{nc: nc, prefix: prefix, logger: logger}
}

// Subject maps a channel such as conversation:<id> to <prefix>.conversation.<id>.
func (b *NATSBus) Subject(channel string) string {
	return b.prefix + "." + strings.Replace(channel, ":", ".", 1)
}

func (b *NATSBus) Publish(_ context.Context, channel string, data []byte) error {
	if err := b.nc.Publish(b.Subject(channel), data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	return nil
}

func (b *NATSBus) Subscribe(channel string, handler Handler) (Subscription, error) {
	sub, err := b.nc.Subscribe(b.Subject(channel), func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}
	return sub, nil
}

// Flush waits until the server has processed all buffered publishes.
func (b *NATSBus) Flush(ctx context.Context) error {
	return b.nc.FlushWithContext(ctx)
}

func (b *NATSBus) Close() error {
	if err := b.nc.Drain(); err != nil {
		b.nc.Close()
		return fmt.Errorf("failed to drain NATS connection: %w", err)
	}
	return nil
}
