// Package idempotency drops webhook notifications already processed.
package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=idempotency.go -destination=mock_idempotency.go -package=idempotency

const (
	keyPrefix = "coursemarket:notification:"
	keyTTL    = 24 * time.Hour
)

// Deduper claims a notification key. First reports whether this call is the
// first one for the key within its retention window.
type Deduper interface {
	First(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client) *RedisDeduper {
	return &RedisDeduper{client: client, ttl: keyTTL}
}

func (d *RedisDeduper) First(ctx context.Context, key string) (bool, error) {
	ok, err := d.client.SetNX(ctx, keyPrefix+key, 1, d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim notification %s: %w", key, err)
	}
	return ok, nil
}

// Release forgets the key so that a redelivery of a notification whose
// processing failed is handled again.
func (d *RedisDeduper) Release(ctx context.Context, key string) error {
	if err := d.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release notification %s: %w", key, err)
	}
	return nil
}

// NopDeduper accepts every notification.
type NopDeduper struct{}

func (NopDeduper) First(context.Context, string) (bool, error) { return true, nil }

func (NopDeduper) Release(context.Context, string) error { return nil }
