package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/cipherchat-server/internal/logger"
	"github.com/dtroode/cipherchat-server/internal/metrics"
	"github.com/dtroode/cipherchat-server/internal/model"
)

const (
	DefaultSweepInterval  = 5 * time.Minute
	DefaultSweepBatchSize = 1000
)

// RetentionSweeper periodically deletes messages whose expiry has passed.
type RetentionSweeper struct {
	messageStore model.MessageStore
	interval     time.Duration
	batchSize    int
	batchDelay   time.Duration
	metrics      *metrics.Metrics
	logger       *logger.Logger
	clock        func() time.Time
}

// SweepConfig tunes a RetentionSweeper. Zero values select defaults.
type SweepConfig struct {
	Interval   time.Duration
	BatchSize  int
	BatchDelay time.Duration
}

func NewRetentionSweeper(messageStore model.MessageStore, cfg SweepConfig, metrics *metrics.Metrics, logger *logger.Logger) *RetentionSweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultSweepInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultSweepBatchSize
	}
	return &RetentionSweeper{
		messageStore: messageStore,
		interval:     cfg.Interval,
		batchSize:    cfg.BatchSize,
		batchDelay:   cfg.BatchDelay,
		metrics:      metrics,
		logger:       logger,
		clock:        utcNow,
	}
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (s *RetentionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("retention sweeper started", "interval", s.interval, "batch_size", s.batchSize)

	for {
		if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("retention sweep failed", "error", err)
		}

		select {
		case <-ctx.Done():
			s.logger.Info("retention sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

// RunOnce deletes every message that expired before the run started and
// returns how many were removed. Messages stored during the run are never
// affected because their expiry lies after the captured cutoff.
func (s *RetentionSweeper) RunOnce(ctx context.Context) (int64, error) {
	started := time.Now()
	cutoff := s.clock()

	var total int64
	for {
		deleted, err := s.messageStore.DeleteExpired(ctx, cutoff, s.batchSize)
		total += deleted
		if err != nil {
			return total, fmt.Errorf("failed to delete expired messages: %w", err)
		}
		if deleted < int64(s.batchSize) {
			break
		}

		if s.batchDelay > 0 {
			select {
			case <-ctx.Done():
				return total, ctx.Err()
			case <-time.After(s.batchDelay):
			}
		}
	}

	s.metrics.Swept(total, started)
	if total > 0 {
		s.logger.Info("expired messages removed", "count", total, "cutoff", cutoff)
	}

	return total, nil
}
