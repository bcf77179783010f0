package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lustre/internal/cart/models"
	"lustre/pkg/platform/sentinel"
)

// PostgresStore persists the snapshot as a single upserted row keyed by the
// storage key. The pool lifecycle is managed by the caller.
type PostgresStore struct {
	pool       *pgxpool.Pool
	storageKey string
}

// Schema creates the cart_snapshots table. Idempotent; call it at startup.
const Schema = `
CREATE TABLE IF NOT EXISTS cart_snapshots (
	storage_key TEXT PRIMARY KEY,
	payload     JSONB NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgresStore creates a Postgres-backed snapshot store.
func NewPostgresStore(pool *pgxpool.Pool, storageKey string) *PostgresStore {
	return &PostgresStore{pool: pool, storageKey: storageKey}
}

// EnsureSchema creates the backing table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure cart_snapshots schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load(ctx context.Context) ([]models.LineItem, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM cart_snapshots WHERE storage_key = $1`,
		s.storageKey,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select cart snapshot %q: %w", s.storageKey, err)
	}
	items, ok := Decode(payload)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return items, nil
}

func (s *PostgresStore) Save(ctx context.Context, items []models.LineItem) error {
	payload, err := Encode(items)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO cart_snapshots (storage_key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (storage_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		s.storageKey, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert cart snapshot %q: %w", s.storageKey, err)
	}
	return nil
}
