package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/cipherchat-server/internal/model"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: model.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: codeUniqueViolation}, want: model.ErrConflict},
		{name: "serialization failure", err: &pgconn.PgError{Code: codeSerializationFailure}, want: model.ErrUnavailable},
		{name: "connection exception", err: &pgconn.PgError{Code: "08006"}, want: model.ErrUnavailable},
		{name: "admin shutdown", err: fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: codeAdminShutdown}), want: model.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError("op", tt.err), tt.want)
		})
	}

	assert.NoError(t, mapError("op", nil))

	plain := errors.New("syntax error")
	err := mapError("op", &pgconn.PgError{Code: "42601", Message: plain.Error()})
	assert.NotErrorIs(t, err, model.ErrUnavailable)
	assert.NotErrorIs(t, err, model.ErrConflict)
}

func TestConnection_Retry(t *testing.T) {
	conn := &Connection{retryMaxElapsed: time.Second}

	t.Run("retries transient errors", func(t *testing.T) {
		attempts := 0
		err := conn.retry(context.Background(), func(context.Context) error {
			attempts++
			if attempts < 3 {
				return &pgconn.PgError{Code: codeDeadlockDetected}
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("stops on permanent errors", func(t *testing.T) {
		attempts := 0
		err := conn.retry(context.Background(), func(context.Context) error {
			attempts++
			return pgx.ErrNoRows
		})
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.Equal(t, 1, attempts)
	})

	t.Run("disabled", func(t *testing.T) {
		attempts := 0
		noRetry := &Connection{}
		err := noRetry.retry(context.Background(), func(context.Context) error {
			attempts++
			return &pgconn.PgError{Code: codeDeadlockDetected}
		})
		assert.Error(t, err)
		assert.Equal(t, 1, attempts)
	})
}
