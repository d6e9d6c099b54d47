package delivery

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"

	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/metrics"
)

const (
	DefaultSessionBuffer = 64
	DefaultDedupSize     = 1024
)

// Hub opens live sessions on top of a bus.
type Hub struct {
	bus        Bus
	bufferSize int
	dedupSize  int
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

type HubOption func(*Hub)

// WithSessionBuffer sets how many undelivered events a session holds before dropping.
func WithSessionBuffer(size int) HubOption {
	return func(h *Hub) {
		if size > 0 {
			h.bufferSize = size
		}
	}
}

// WithDedupSize sets how many recent message ids a session remembers.
func WithDedupSize(size int) HubOption {
	return func(h *Hub) {
		if size > 0 {
			h.dedupSize = size
		}
	}
}

func NewHub(bus Bus, metrics *metrics.Metrics, logger *logger.Logger, opts ...HubOption) *Hub {
	h := &Hub{
		bus:        bus,
		bufferSize: DefaultSessionBuffer,
		dedupSize:  DefaultDedupSize,
		metrics:    metrics,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Open starts a session subscribed to the user's personal channel.
func (h *Hub) Open(userID uuid.UUID) (*Session, error) {
	seen, err := lru.New(h.dedupSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create dedup cache: %w", err)
	}

	s := &Session{
		userID:  userID,
		hub:     h,
		events:  make(chan Event, h.bufferSize),
		seen:    seen,
		watched: make(map[uuid.UUID]Subscription),
	}

	personal, err := h.bus.Subscribe(UserChannel(userID), s.deliver)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to personal channel: %w", err)
	}
	s.personal = personal

	h.metrics.SessionOpened()
	h.logger.Debug("live session opened", "user_id", userID)

	return s, nil
}
