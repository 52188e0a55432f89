package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/navgurukul/region-detection/internal/core"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time          { return c.current }
func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestCache(t *testing.T, clock *fakeClock) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(zap.NewNop(), 0, clock.now)
	t.Cleanup(c.Stop)
	return c
}

func entryAt(hash string, expires time.Time) *core.CacheEntry {
	return &core.CacheEntry{
		TextHash:   hash,
		IsCode:     true,
		Language:   "javascript",
		Category:   core.CategoryCode,
		Confidence: 0.8,
		LastSeen:   expires.Add(-time.Minute),
		ExpiresAt:  expires,
	}
}

func TestMemoryCacheGetSet(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)
	ctx := context.Background()

	if _, err := c.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty cache: err = %v, want ErrNotFound", err)
	}

	stored := entryAt("abc", clock.current.Add(time.Minute))
	if err := c.Set(ctx, stored); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := c.Get(ctx, "abc")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Language != "javascript" || got.Category != core.CategoryCode {
		t.Errorf("Get returned %+v, want stored entry", got)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)
	ctx := context.Background()

	if err := c.Set(ctx, entryAt("abc", clock.current.Add(time.Minute))); err != nil {
		t.Fatalf("Set: %v", err)
	}

	clock.advance(30 * time.Second)
	if _, err := c.Get(ctx, "abc"); err != nil {
		t.Fatalf("Get before expiry: %v", err)
	}

	clock.advance(time.Minute)
	if _, err := c.Get(ctx, "abc"); !errors.Is(err, ErrExpired) {
		t.Errorf("Get after expiry: err = %v, want ErrExpired", err)
	}
}

func TestMemoryCacheDelete(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)
	ctx := context.Background()

	if err := c.Set(ctx, entryAt("abc", clock.current.Add(time.Minute))); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "abc"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := c.Get(ctx, "abc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryCacheCleanup(t *testing.T) {
	clock := &fakeClock{current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := newTestCache(t, clock)
	ctx := context.Background()

	if err := c.Set(ctx, entryAt("old", clock.current.Add(time.Minute))); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, entryAt("fresh", clock.current.Add(time.Hour))); err != nil {
		t.Fatalf("Set: %v", err)
	}

	clock.advance(10 * time.Minute)
	if err := c.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup: %v", err)
	}

	if _, err := c.Get(ctx, "old"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired entry survived cleanup: err = %v", err)
	}
	if _, err := c.Get(ctx, "fresh"); err != nil {
		t.Errorf("fresh entry removed by cleanup: %v", err)
	}
}
