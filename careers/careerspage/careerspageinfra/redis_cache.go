package careerspageinfra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careers/careers/careerspage"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds staleness if an invalidation is lost
const DefaultTTL = 10 * time.Minute

// RedisPageCache implements careerspage.PageCache using Redis
type RedisPageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisPageCache creates a new Redis-backed page cache
func NewRedisPageCache(client *redis.Client, prefix string, ttl time.Duration) *RedisPageCache {
	if prefix == "" {
		prefix = "careers:page"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisPageCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get returns the cached snapshot for slug
func (c *RedisPageCache) Get(ctx context.Context, slug string) (*careerspage.Snapshot, bool, error) {
	data, err := c.client.Get(ctx, c.key(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached page %s: %w", slug, err)
	}

	var snap careerspage.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached page %s: %w", slug, err)
	}

	return &snap, true, nil
}

// Set caches a snapshot for slug
func (c *RedisPageCache) Set(ctx context.Context, slug string, snap *careerspage.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal page %s: %w", slug, err)
	}

	if err := c.client.Set(ctx, c.key(slug), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache page %s: %w", slug, err)
	}

	return nil
}

// Invalidate drops the cached snapshot for slug
func (c *RedisPageCache) Invalidate(ctx context.Context, slug string) error {
	if err := c.client.Del(ctx, c.key(slug)).Err(); err != nil {
		return fmt.Errorf("invalidate page %s: %w", slug, err)
	}
	return nil
}

func (c *RedisPageCache) key(slug string) string {
	return c.prefix + ":" + careerspage.NormalizeSlug(slug)
}
