package rediscache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLock is a best-effort mutual exclusion between service instances.
type RedisLock struct {
	client *redis.Client
}

func NewRedisLock(client *redis.Client) *RedisLock {
	return &RedisLock{client: client}
}

func (r *RedisLock) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	const op = "rediscache.RedisLock.Lock"

	result, err := r.client.SetNX(ctx, fmt.Sprintf("lock:%s", key), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func (r *RedisLock) Unlock(ctx context.Context, key string) error {
	const op = "rediscache.RedisLock.Unlock"

	if err := r.client.Del(ctx, fmt.Sprintf("lock:%s", key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
