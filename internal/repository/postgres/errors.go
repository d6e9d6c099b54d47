package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/cipherchat-server/internal/model"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeAdminShutdown        = "57P01"
	classConnectionException = "08"
)

// retry runs op until it succeeds, fails permanently or the retry budget is
// spent. Only transient errors are retried.
func (s *Connection) retry(ctx context.Context, op func(ctx context.Context) error) error {
	if s.retryMaxElapsed <= 0 {
		return op(ctx)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = s.retryMaxElapsed

	return backoff.Retry(func() error {
		err := op(ctx)
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(b, ctx))
}

// isTransient reports whether err is a connectivity or concurrency failure
// that may succeed when retried.
func isTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeAdminShutdown:
			return true
		}
		return strings.HasPrefix(pgErr.Code, classConnectionException)
	}

	return false
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// mapError translates driver errors into the model error taxonomy.
func mapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return model.ErrNotFound
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s", model.ErrConflict, op)
	case isTransient(err):
		return fmt.Errorf("%w: failed to %s: %v", model.ErrUnavailable, op, err)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
