package cache

import (
	"context"
	"errors"
	"fmt"
	"fxrates/internal/domain"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis shares cached payloads between service replicas.
// An unreachable server turns reads into misses and writes into logged no-ops.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (c *Redis) key(key string) string { return c.prefix + key }

func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		logrus.WithError(fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)).
			WithField("key", key).Warn("Cache read failed, treating as miss")
		return nil, false
	}
	return payload, true
}

func (c *Redis) SetWithTTL(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := c.client.Set(ctx, c.key(key), payload, ttl).Err(); err != nil {
		logrus.WithError(fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)).
			WithField("key", key).Warn("Cache write failed, skipping")
	}
}

func (c *Redis) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Redis) Close() error { return c.client.Close() }
