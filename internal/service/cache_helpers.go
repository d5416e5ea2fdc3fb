package service

import (
	"context"
	"time"

	"tour-catalog/internal/cache"

	"github.com/sirupsen/logrus"
)

// The helpers below treat the cache as optional: a nil cache or a cache error
// falls through to the database.

func cached(ctx context.Context, c cache.Cache, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	found, err := c.Get(ctx, key, dest)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache read failed")
		return false
	}
	return found
}

func store(ctx context.Context, c cache.Cache, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
}

func invalidate(ctx context.Context, c cache.Cache, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		logrus.WithError(err).WithField("keys", keys).Warn("Cache invalidation failed")
	}
}
