package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNewReportCache_DefaultTTL(t *testing.T) {
	if c := NewReportCache(nil, 0); c.ttl != DefaultReportCacheTTL {
		t.Fatalf("expected default TTL, got %v", c.ttl)
	}
	if c := NewReportCache(nil, 5*time.Second); c.ttl != 5*time.Second {
		t.Fatalf("expected 5s TTL, got %v", c.ttl)
	}
}

func TestReportCache_Key(t *testing.T) {
	c := NewReportCache(nil, 0)
	if got := c.key("top-products:10"); got != "report:top-products:10" {
		t.Fatalf("unexpected key %q", got)
	}
}

// Integration tests: skipped unless REDIS_URL is set.
func TestReportCacheIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	rc, err := NewRedisClient(newTestConfig(redisURL))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close() //nolint:errcheck

	ctx := context.Background()
	c := NewReportCache(rc, time.Minute)

	type row struct {
		Name  string `json:"name"`
		Total int    `json:"total"`
	}

	t.Run("Miss_ReturnsRedisNil", func(t *testing.T) {
		var got []row
		if err := c.Get(ctx, "missing-report", &got); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil, got %v", err)
		}
	})

	t.Run("SetGet_RoundTrip", func(t *testing.T) {
		want := []row{{Name: "A", Total: 7}}
		if err := c.Set(ctx, "test:round-trip", want); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		var got []row
		if err := c.Get(ctx, "test:round-trip", &got); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(got) != 1 || got[0] != want[0] {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("Invalidate_RemovesNamespace", func(t *testing.T) {
		if err := c.Set(ctx, "test:invalidate", row{Name: "x"}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := c.Invalidate(ctx); err != nil {
			t.Fatalf("Invalidate failed: %v", err)
		}
		var got row
		if err := c.Get(ctx, "test:invalidate", &got); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after invalidate, got %v", err)
		}
	})
}
