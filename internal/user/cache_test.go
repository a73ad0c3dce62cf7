package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	cache := newTokenCache(CacheConfig{Size: 10, TTL: time.Minute})
	user := &domain.User{ID: 1, Username: "alice"}

	cache.Set("alice", user)

	retrieved, found := cache.Get("alice")
	assert.True(t, found)
	assert.Equal(t, user, retrieved)

	cache.Invalidate("alice")

	retrieved, found = cache.Get("alice")
	assert.False(t, found)
	assert.Nil(t, retrieved)
}

func TestCacheStats(t *testing.T) {
	cache := newTokenCache(CacheConfig{Size: 10, TTL: time.Minute})
	user := &domain.User{ID: 1, Username: "alice"}

	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 0, stats.Size)

	cache.Get("alice")
	stats = cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	cache.Set("alice", user)
	cache.Get("alice")
	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheVersionMismatch(t *testing.T) {
	cache := newTokenCache(CacheConfig{Size: 10, TTL: time.Minute})
	cache.lru.Add("alice", &cachedUserEntry{Version: "0.9", User: &domain.User{Username: "alice"}})

	_, found := cache.Get("alice")
	assert.False(t, found)
	assert.Equal(t, 0, cache.lru.Len())
}

func TestCacheExpiry(t *testing.T) {
	cache := newTokenCache(CacheConfig{Size: 10, TTL: 20 * time.Millisecond})
	cache.Set("alice", &domain.User{Username: "alice"})

	assert.Eventually(t, func() bool {
		_, found := cache.Get("alice")
		return !found
	}, time.Second, 10*time.Millisecond)
}

func TestCacheClear(t *testing.T) {
	cache := newTokenCache(CacheConfig{Size: 10, TTL: time.Minute})
	cache.Set("a", &domain.User{Username: "a"})
	cache.Set("b", &domain.User{Username: "b"})

	cache.Clear()
	assert.Equal(t, 0, cache.GetStats().Size)
}

func TestCacheConfig(t *testing.T) {
	cfg := DefaultCacheConfig()
	assert.Equal(t, 1024, cfg.Size)
	assert.Equal(t, 5*time.Minute, cfg.TTL)

	cache := newTokenCache(CacheConfig{})
	cache.Set("x", &domain.User{})
	assert.Equal(t, 1, cache.GetStats().Size)
}
