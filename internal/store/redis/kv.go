package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/unitecon/internal/observability"
)

// KV is a key-value store backed by plain Redis strings.
type KV struct {
	client *redis.Client
}

// New creates a new Redis key-value adapter and checks connectivity.
func New(ctx context.Context, client *redis.Client) (*KV, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &KV{client: client}, nil
}

// Get returns the value stored under key.
func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := k.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return value, true, nil
}

// Put stores value under key without expiry.
func (k *KV) Put(ctx context.Context, key string, value []byte) error {
	if err := k.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	observability.FromContext(ctx).Debug("stored value",
		observability.String("key", key),
		observability.Int("bytes", len(value)))

	return nil
}

// Close closes the underlying client.
func (k *KV) Close() error {
	return k.client.Close()
}
