package insights

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/footy-edge/internal/models"
)

func cachedBundle(matchupID uuid.UUID) *models.InsightsBundle {
	return &models.InsightsBundle{
		RequestID: uuid.New(),
		MatchupID: matchupID,
		League:    "premier_league",
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
	}
}

func TestCacheKeyString(t *testing.T) {
	id := uuid.MustParse("d2719a5e-0bba-4f5c-9c0a-2f6a4f2f3b11")
	key := CacheKey{MatchupID: id, SnapshotVersion: "2026-08-01", OddsFingerprint: "no-odds"}

	assert.Equal(t, "d2719a5e-0bba-4f5c-9c0a-2f6a4f2f3b11:2026-08-01:no-odds", key.String())
}

func TestBundleCacheMissThenHit(t *testing.T) {
	bc := NewBundleCache(time.Minute, time.Minute)
	matchupID := uuid.New()
	key := CacheKey{MatchupID: matchupID, SnapshotVersion: "v1", OddsFingerprint: "no-odds"}

	require.Nil(t, bc.Get(key))

	bundle := cachedBundle(matchupID)
	bc.Set(key, bundle)

	got := bc.Get(key)
	require.NotNil(t, got)
	assert.Equal(t, bundle.RequestID, got.RequestID)

	hits, misses, ratio := bc.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.InDelta(t, 0.5, ratio, 1e-9)
}

func TestBundleCacheDistinctOddsFingerprints(t *testing.T) {
	bc := NewBundleCache(time.Minute, time.Minute)
	matchupID := uuid.New()

	staleKey := CacheKey{MatchupID: matchupID, SnapshotVersion: "v1", OddsFingerprint: "aaaa"}
	freshKey := CacheKey{MatchupID: matchupID, SnapshotVersion: "v1", OddsFingerprint: "bbbb"}

	bc.Set(staleKey, cachedBundle(matchupID))

	assert.NotNil(t, bc.Get(staleKey))
	assert.Nil(t, bc.Get(freshKey), "a different odds fingerprint must not reuse the bundle")
}

func TestBundleCacheDistinctSnapshotVersions(t *testing.T) {
	bc := NewBundleCache(time.Minute, time.Minute)
	matchupID := uuid.New()

	oldKey := CacheKey{MatchupID: matchupID, SnapshotVersion: "v1", OddsFingerprint: "no-odds"}
	newKey := CacheKey{MatchupID: matchupID, SnapshotVersion: "v2", OddsFingerprint: "no-odds"}

	bc.Set(oldKey, cachedBundle(matchupID))

	assert.Nil(t, bc.Get(newKey), "a registry reload must invalidate cached bundles")
}

func TestBundleCacheExpiry(t *testing.T) {
	bc := NewBundleCache(20*time.Millisecond, time.Minute)
	matchupID := uuid.New()
	key := CacheKey{MatchupID: matchupID, SnapshotVersion: "v1", OddsFingerprint: "no-odds"}

	bc.Set(key, cachedBundle(matchupID))
	require.NotNil(t, bc.Get(key))

	time.Sleep(50 * time.Millisecond)

	assert.Nil(t, bc.Get(key))
}

func TestBundleCacheClear(t *testing.T) {
	bc := NewBundleCache(time.Minute, time.Minute)
	matchupID := uuid.New()
	key := CacheKey{MatchupID: matchupID, SnapshotVersion: "v1", OddsFingerprint: "no-odds"}

	bc.Set(key, cachedBundle(matchupID))
	require.Equal(t, 1, bc.ItemCount())

	bc.Clear()

	assert.Equal(t, 0, bc.ItemCount())
	assert.Nil(t, bc.Get(key))

	hits, _, _ := bc.Stats()
	assert.Equal(t, uint64(0), hits, "clearing resets the counters")
}

func TestNewBundleCacheDefaults(t *testing.T) {
	bc := NewBundleCache(0, 0)

	assert.Equal(t, 5*time.Minute, bc.ttl)
}
