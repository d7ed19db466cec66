package redis

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestBalanceCacheSetAndGet(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client, time.Minute, nil)
	ctx := context.Background()
	asOf := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	_, gen, ok, err := cache.Get(ctx, "1000", asOf)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected initial miss")
	}

	balance := decimal.RequireFromString("1250.75")
	if err := cache.Set(ctx, "1000", asOf, balance, gen); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, _, ok, err := cache.Get(ctx, "1000", asOf)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if !got.Equal(balance) {
		t.Fatalf("expected %s, got %s", balance, got)
	}
}

func TestBalanceCacheMiss(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client, time.Minute, nil)

	_, _, ok, err := cache.Get(context.Background(), "1000", time.Now())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected cache miss")
	}
}

func TestBalanceCacheKeyedByDate(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client, time.Minute, nil)
	ctx := context.Background()

	d1 := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, "1000", d1, decimal.RequireFromString("100"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	_, _, ok, err := cache.Get(ctx, "1000", d2)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected a different as-of date to miss")
	}
}

func TestBalanceCacheInvalidate(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client, time.Minute, nil)
	ctx := context.Background()
	asOf := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, "1000", asOf, decimal.RequireFromString("100"), 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	_, gen, ok, err := cache.Get(ctx, "1000", asOf)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected stale value to be gone after invalidation")
	}

	// Values written after invalidation are served again.
	fresh := decimal.RequireFromString("250")
	if err := cache.Set(ctx, "1000", asOf, fresh, gen); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, _, ok, err := cache.Get(ctx, "1000", asOf)
	if err != nil || !ok {
		t.Fatalf("expected hit after re-set, ok=%v err=%v", ok, err)
	}
	if !got.Equal(fresh) {
		t.Fatalf("expected %s, got %s", fresh, got)
	}
}

func TestBalanceCacheSetLosesToConcurrentInvalidate(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client, time.Minute, nil)
	ctx := context.Background()
	asOf := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	// A reader misses and goes off to recompute against the database.
	_, gen, ok, err := cache.Get(ctx, "1000", asOf)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected initial miss")
	}

	// A posting invalidates while the recompute is in flight.
	if err := cache.Invalidate(ctx); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	// The reader writes back the now-stale balance under its old generation.
	if err := cache.Set(ctx, "1000", asOf, decimal.RequireFromString("500.00"), gen); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	// The stale write-back must not be served under the new generation.
	_, _, ok, err = cache.Get(ctx, "1000", asOf)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("stale write-back survived invalidation")
	}
}

func TestBalanceCacheGarbagePayload(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	cache := NewBalanceCache(client, time.Minute, nil)
	ctx := context.Background()
	asOf := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	mr.Set("balance:0:1000:2026-03-14", "not-a-number")

	_, _, ok, err := cache.Get(ctx, "1000", asOf)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Fatal("expected garbage payload to read as a miss")
	}
}
