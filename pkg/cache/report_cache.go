package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultReportCacheTTL is used when NewReportCache is given a non-positive TTL.
	DefaultReportCacheTTL = time.Minute

	reportCacheKeyPrefix = "report"
	reportScanBatch      = 100
)

// ReportCache stores read-only report results as JSON strings.
// Key format: "report:{name}", e.g. "report:top-products:10".
//
// Every sale write invalidates the whole namespace, so entries never
// outlive the data they summarise by more than one write.
type ReportCache struct {
	client *RedisClient
	ttl    time.Duration
}

// NewReportCache creates a ReportCache backed by the given RedisClient.
func NewReportCache(r *RedisClient, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultReportCacheTTL
	}
	return &ReportCache{client: r, ttl: ttl}
}

// Get decodes the cached report into dst.
// Returns redis.Nil when the key does not exist or has expired.
func (c *ReportCache) Get(ctx context.Context, name string, dst any) error {
	raw, err := c.client.Client().Get(ctx, c.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return redis.Nil
		}
		return fmt.Errorf("report cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("report cache decode %s: %w", name, err)
	}
	return nil
}

// Set stores v under name with the cache TTL.
func (c *ReportCache) Set(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("report cache encode %s: %w", name, err)
	}
	if err := c.client.Client().Set(ctx, c.key(name), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("report cache set: %w", err)
	}
	return nil
}

// Invalidate deletes every cached report. It walks the namespace with SCAN
// so it never blocks Redis the way KEYS would.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	rdb := c.client.Client()
	var cursor uint64
	for {
		keys, next, err := rdb.Scan(ctx, cursor, reportCacheKeyPrefix+":*", reportScanBatch).Result()
		if err != nil {
			return fmt.Errorf("report cache scan: %w", err)
		}
		if len(keys) > 0 {
			if err := rdb.Unlink(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("report cache unlink: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// key builds the Redis key: "report:{name}"
func (c *ReportCache) key(name string) string {
	return reportCacheKeyPrefix + ":" + name
}
