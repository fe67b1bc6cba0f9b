// FilePath: internal/cache/cache.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smarthive/hub/internal/config"
	nuts "github.com/vaudience/go-nuts"
)

// SummaryCache holds short-lived JSON snapshots (dashboard counts) in
// Redis. All operations degrade gracefully: a cache failure is logged and
// reported as a miss, never as an error to the caller's caller.
type SummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache connects to Redis. The connection is verified once so a
// misconfigured cache is visible at startup.
func NewSummaryCache(cfg config.RedisConfig) (*SummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to Redis: %w", err)
	}

	ttl := cfg.SummaryTTL
	if ttl <= 0 {
		ttl = 15 * time.Second
	}

	nuts.L.Infof("[Cache] Connected to Redis at %s:%d (db %d)", cfg.Host, cfg.Port, cfg.DB)
	return &SummaryCache{client: client, ttl: ttl}, nil
}

// Get unmarshals the cached value for key into dest. Returns false on miss
// or on any cache failure.
func (c *SummaryCache) Get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			nuts.L.Warnf("[Cache] Get %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		nuts.L.Warnf("[Cache] Corrupt cache entry %s: %v", key, err)
		return false
	}
	return true
}

// Set stores val under key for the configured TTL, best effort.
func (c *SummaryCache) Set(ctx context.Context, key string, val any) {
	data, err := json.Marshal(val)
	if err != nil {
		nuts.L.Warnf("[Cache] Marshal for %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		nuts.L.Warnf("[Cache] Set %s failed: %v", key, err)
	}
}

// Close releases the Redis connection.
func (c *SummaryCache) Close() error {
	return c.client.Close()
}
