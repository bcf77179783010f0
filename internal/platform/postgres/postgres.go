package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lustre/internal/platform/config"
)

// New creates a pgx connection pool from the provided configuration.
// Returns nil if the URL is empty (Postgres not configured).
func New(ctx context.Context, cfg config.Postgres) (*pgxpool.Pool, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	pool, err := pgxpool.New(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}
	return pool, nil
}
