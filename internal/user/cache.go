package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/StockDesk_Go/internal/domain"
)

// CacheConfig sizes the token cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default token cache configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports token cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string
	User     *domain.User
	CachedAt time.Time
}

// tokenCache maps bearer tokens to resolved users with time-based expiration
// and version-based invalidation to prevent stale data.
type tokenCache struct {
	lru    *expirable.LRU[string, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// newTokenCache creates a token cache. Non-positive values fall back to defaults.
func newTokenCache(config CacheConfig) *tokenCache {
	if config.Size <= 0 {
		config.Size = DefaultCacheSize
	}
	if config.TTL <= 0 {
		config.TTL = DefaultCacheTTL
	}
	return &tokenCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](config.Size, nil, config.TTL),
	}
}

// Get retrieves a user from the cache.
// Returns (nil, false) if not in cache, expired, or version mismatch.
func (c *tokenCache) Get(token string) (*domain.User, bool) {
	entry, found := c.lru.Get(token)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(token)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.User, true
}

// Set stores a user in the cache with current schema version.
func (c *tokenCache) Set(token string, user *domain.User) {
	c.lru.Add(token, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a token from the cache.
func (c *tokenCache) Invalidate(token string) {
	c.lru.Remove(token)
}

// Clear removes all entries from the cache.
func (c *tokenCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit and miss counters and the current size
func (c *tokenCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
