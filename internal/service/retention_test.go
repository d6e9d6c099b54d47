package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	servermocks "github.com/dtroode/cipherchat-server/internal/mocks"
	"github.com/dtroode/cipherchat-server/internal/model"
	"github.com/dtroode/cipherchat-server/internal/testutil"
)

func TestRetentionSweeper_RunOnce(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("deletes in batches with a fixed cutoff", func(t *testing.T) {
		store := &servermocks.MessageStore{}
		store.On("DeleteExpired", ctx, cutoff, 100).Return(int64(100), nil).Twice()
		store.On("DeleteExpired", ctx, cutoff, 100).Return(int64(7), nil).Once()

		sweeper := NewRetentionSweeper(store, SweepConfig{BatchSize: 100}, nil, testutil.MakeNoopLogger())
		calls := 0
		sweeper.clock = func() time.Time {
			calls++
			return cutoff.Add(time.Duration(calls-1) * time.Hour)
		}

		deleted, err := sweeper.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(207), deleted)
		assert.Equal(t, 1, calls)
		store.AssertExpectations(t)
	})

	t.Run("reports partial progress on failure", func(t *testing.T) {
		store := &servermocks.MessageStore{}
		store.On("DeleteExpired", ctx, cutoff, 10).Return(int64(10), nil).Once()
		store.On("DeleteExpired", ctx, cutoff, 10).Return(int64(0), model.ErrUnavailable).Once()

		sweeper := NewRetentionSweeper(store, SweepConfig{BatchSize: 10}, nil, testutil.MakeNoopLogger())
		sweeper.clock = func() time.Time { return cutoff }

		deleted, err := sweeper.RunOnce(ctx)
		assert.ErrorIs(t, err, model.ErrUnavailable)
		assert.Equal(t, int64(10), deleted)
	})

	t.Run("defaults", func(t *testing.T) {
		sweeper := NewRetentionSweeper(&servermocks.MessageStore{}, SweepConfig{}, nil, testutil.MakeNoopLogger())
		assert.Equal(t, DefaultSweepInterval, sweeper.interval)
		assert.Equal(t, DefaultSweepBatchSize, sweeper.batchSize)
	})
}

func TestRetentionSweeper_RunStopsWithContext(t *testing.T) {
	store := &servermocks.MessageStore{}
	store.On("DeleteExpired", mock.Anything, mock.AnythingOfType("time.Time"), 5).Return(int64(0), nil)

	sweeper := NewRetentionSweeper(store, SweepConfig{Interval: 10 * time.Millisecond, BatchSize: 5}, nil, testutil.MakeNoopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
	assert.GreaterOrEqual(t, len(store.Calls), 2)
}
