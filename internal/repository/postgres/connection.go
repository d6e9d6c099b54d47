package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtroode/cipherchat-server/database"
)

const defaultRetryMaxElapsed = 2 * time.Second

type Connection struct {
	*pgxpool.Pool
	retryMaxElapsed time.Duration
}

type Option func(*Connection)

// WithRetryMaxElapsed bounds how long transient failures are retried.
// Zero disables retries.
func WithRetryMaxElapsed(d time.Duration) Option {
	return func(c *Connection) {
		c.retryMaxElapsed = d
	}
}

func NewConnection(ctx context.Context, dsn string, opts ...Option) (*Connection, error) {
	conf, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection pool: %w", err)
	}

	if err := database.Migrate(ctx, dsn); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	conn := &Connection{
		Pool:            pool,
		retryMaxElapsed: defaultRetryMaxElapsed,
	}
	for _, opt := range opts {
		opt(conn)
	}

	return conn, nil
}

func (s *Connection) Close() error {
	if s.Pool != nil {
		s.Pool.Close()
	}
	return nil
}

func (s *Connection) Ping(ctx context.Context) error {
	if s.Pool == nil {
		return fmt.Errorf("connection pool is nil")
	}
	return s.Pool.Ping(ctx)
}
