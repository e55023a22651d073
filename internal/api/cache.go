package api

import (
	"context" // Context for Redis operations
	"time"    // Cache TTL

	"complaint_system/internal/utils" // Cache helpers

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Structured logging
)

// responseCache caches complaint reads. Redis failures are logged and
// otherwise ignored so the database stays the source of truth.
//
// Item keys are written through on resolve and only ever added (SETNX) by
// readers, so a reader holding a pre-resolve row cannot replace the resolved
// one. Listing keys carry a generation that every write bumps, so a late
// fill lands under a generation nobody reads any more.
type responseCache struct {
	rdb *redis.Client // nil disables caching
	ttl time.Duration
}

func newResponseCache(rdb *redis.Client, ttl time.Duration) *responseCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &responseCache{rdb: rdb, ttl: ttl}
}

func (rc *responseCache) get(ctx context.Context, key string, dest any) bool {
	found, err := utils.GetCache(ctx, rc.rdb, key, dest)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache read failed")
		return false
	}
	return found
}

// fill stores a value read from the database unless a newer one is already there
func (rc *responseCache) fill(ctx context.Context, key string, value any) {
	if _, err := utils.AddCache(ctx, rc.rdb, key, value, rc.ttl); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
}

// put stores a value just committed to the database
func (rc *responseCache) put(ctx context.Context, key string, value any) {
	if err := utils.SetCache(ctx, rc.rdb, key, value, rc.ttl); err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("Cache write failed")
	}
}

// listKey returns the listing key for the current generation. ok is false
// when the generation cannot be read, in which case the listing is not cached.
func (rc *responseCache) listKey(ctx context.Context, resolved *bool) (string, bool) {
	gen, err := utils.ListGeneration(ctx, rc.rdb)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("Cache generation read failed")
		return "", false
	}
	return utils.ComplaintListKey(gen, resolved), true
}

func (rc *responseCache) bumpLists(ctx context.Context) {
	if err := utils.BumpListGeneration(ctx, rc.rdb); err != nil {
		logrus.WithField("error", err.Error()).Warn("Cache invalidation failed")
	}
}
