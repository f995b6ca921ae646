package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type redisAvailabilityCache struct {
	client *redis.Client
}

// NewRedisAvailabilityCache wraps a redis client as an AvailabilityCache
func NewRedisAvailabilityCache(client *redis.Client) AvailabilityCache {
	return &redisAvailabilityCache{client: client}
}

func (c *redisAvailabilityCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return value, err
}

func (c *redisAvailabilityCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
