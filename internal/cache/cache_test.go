// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:     envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379"),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, pageKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkeyDisabledWithoutHost(t *testing.T) {
	client, err := ConnectValkey(context.Background(), "", "6379", "")
	if err != nil {
		t.Fatalf("ConnectValkey: unexpected error: %v", err)
	}
	if client != nil {
		t.Error("expected nil client when host is empty")
	}
}

func TestConnectValkey(t *testing.T) {
	client, err := ConnectValkey(context.Background(), envOr("VALKEY_HOST", "localhost"), envOr("VALKEY_PORT", "6379"), os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestDisabledPageCache(t *testing.T) {
	ctx := context.Background()

	for name, pc := range map[string]*PageCache{
		"nil cache":  nil,
		"nil client": NewPageCache(nil, time.Minute),
	} {
		t.Run(name, func(t *testing.T) {
			if pc.Enabled() {
				t.Error("Enabled() should be false")
			}
			pc.Set(ctx, "landing", []byte("<html></html>"))
			if data, ok := pc.Get(ctx, "landing"); ok || data != nil {
				t.Errorf("Get on disabled cache: got (%q, %v), want miss", data, ok)
			}
			if n := pc.InvalidateAll(ctx); n != 0 {
				t.Errorf("InvalidateAll on disabled cache: got %d, want 0", n)
			}
		})
	}
}

func TestNewPageCacheDefaultTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Second} {
		if got := NewPageCache(nil, ttl).TTL(); got != DefaultPageTTL {
			t.Errorf("NewPageCache(nil, %v).TTL() = %v, want %v", ttl, got, DefaultPageTTL)
		}
	}
	if got := NewPageCache(nil, time.Hour).TTL(); got != time.Hour {
		t.Errorf("TTL() = %v, want 1h", got)
	}
}

func TestLandingKey(t *testing.T) {
	if got := LandingKey("abc123"); got != "landing:abc123" {
		t.Errorf("LandingKey: got %q", got)
	}
	if LandingKey("a") == LandingKey("b") {
		t.Error("different copy versions must produce different keys")
	}
}

func TestPageCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)
	ctx := context.Background()
	key := LandingKey("test")

	if data, ok := pc.Get(ctx, key); ok || data != nil {
		t.Error("expected cache miss")
	}

	html := []byte("<html><body>Kogaine</body></html>")
	pc.Set(ctx, key, html)

	data, ok := pc.Get(ctx, key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != string(html) {
		t.Errorf("data mismatch: got %q, want %q", data, html)
	}

	ttl, err := client.TTL(ctx, pageKeyPrefix+key).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("stored TTL = %v, want within (0, 1m]", ttl)
	}
}

func TestPageCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPageCache(client, 1*time.Minute)
	ctx := context.Background()

	keys := []string{LandingKey("a"), LandingKey("b"), LandingKey("c")}
	for _, k := range keys {
		pc.Set(ctx, k, []byte(k))
	}

	if n := pc.InvalidateAll(ctx); n < len(keys) {
		t.Errorf("InvalidateAll deleted %d keys, want at least %d", n, len(keys))
	}

	for _, k := range keys {
		if _, ok := pc.Get(ctx, k); ok {
			t.Errorf("expected miss for %q after InvalidateAll", k)
		}
	}
}
