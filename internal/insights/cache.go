// Package insights provides caching for generated bundles.
package insights

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/yourusername/footy-edge/internal/metrics"
	"github.com/yourusername/footy-edge/internal/models"
)

// CacheKey identifies one cached bundle. The snapshot version keys out
// bundles computed by a superseded registry, and the odds fingerprint keys
// out bundles computed against stale odds.
type CacheKey struct {
	MatchupID       uuid.UUID
	SnapshotVersion string
	OddsFingerprint string
}

// String returns string representation of cache key
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.MatchupID, k.SnapshotVersion, k.OddsFingerprint)
}

// BundleCache provides in-memory caching for insights bundles
type BundleCache struct {
	cache     *cache.Cache
	ttl       time.Duration
	hitCount  atomic.Uint64
	missCount atomic.Uint64
}

// NewBundleCache creates a new bundle cache
func NewBundleCache(ttl, cleanupInterval time.Duration) *BundleCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if cleanupInterval <= 0 {
		cleanupInterval = 2 * ttl
	}
	return &BundleCache{
		cache: cache.New(ttl, cleanupInterval),
		ttl:   ttl,
	}
}

// Get retrieves a cached bundle, or nil on a miss
func (bc *BundleCache) Get(key CacheKey) *models.InsightsBundle {
	if result, found := bc.cache.Get(key.String()); found {
		if bundle, ok := result.(*models.InsightsBundle); ok {
			bc.hitCount.Add(1)
			metrics.RecordCacheHit()
			return bundle
		}
	}

	bc.missCount.Add(1)
	metrics.RecordCacheMiss()
	return nil
}

// Set stores a bundle in cache
func (bc *BundleCache) Set(key CacheKey, bundle *models.InsightsBundle) {
	bc.cache.Set(key.String(), bundle, bc.ttl)
}

// Clear flushes the entire cache
func (bc *BundleCache) Clear() {
	bc.cache.Flush()
	bc.hitCount.Store(0)
	bc.missCount.Store(0)
}

// Stats returns cache statistics
func (bc *BundleCache) Stats() (hits, misses uint64, ratio float64) {
	hits = bc.hitCount.Load()
	misses = bc.missCount.Load()
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of items in cache
func (bc *BundleCache) ItemCount() int {
	return bc.cache.ItemCount()
}
