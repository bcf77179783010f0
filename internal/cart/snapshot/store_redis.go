package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"lustre/internal/cart/models"
	"lustre/pkg/platform/sentinel"
)

const redisKeyPrefix = "cart:snapshot:"

// RedisStore persists the snapshot under a single Redis key. This is the
// recommended backend when several storefront instances serve the same
// session; note that concurrent writers are last-writer-wins by design.
type RedisStore struct {
	client     *redis.Client
	storageKey string
}

// NewRedisStore creates a Redis-backed snapshot store. The client lifecycle
// is managed by the caller.
func NewRedisStore(client *redis.Client, storageKey string) *RedisStore {
	return &RedisStore{client: client, storageKey: storageKey}
}

func (s *RedisStore) key() string {
	return redisKeyPrefix + s.storageKey
}

func (s *RedisStore) Load(ctx context.Context) ([]models.LineItem, error) {
	payload, err := s.client.Get(ctx, s.key()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cart snapshot %s: %w", s.key(), err)
	}
	items, ok := Decode(payload)
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, items []models.LineItem) error {
	payload, err := Encode(items)
	if err != nil {
		return err
	}
	// No TTL: the cart survives until the customer clears it or checks out.
	if err := s.client.Set(ctx, s.key(), payload, 0).Err(); err != nil {
		return fmt.Errorf("set cart snapshot %s: %w", s.key(), err)
	}
	return nil
}
