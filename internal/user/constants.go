package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1024

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Credential Limits
// ============================================================================

// MaxUsernameLength matches the users.username column
const MaxUsernameLength = 50

// MaxPasswordBytes is the longest password bcrypt will hash
const MaxPasswordBytes = 72

// DefaultBcryptCost is the hashing cost for new passwords
const DefaultBcryptCost = bcrypt.DefaultCost

// DefaultHistoryLimit caps the session history returned by GetHistory
const DefaultHistoryLimit = 50
