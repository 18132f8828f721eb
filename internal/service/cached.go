package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/pharmacy_api/internal/cache"
)

// getCached returns the entity stored under key, or loads it and stores the
// result. Cache errors are logged and otherwise ignored: the database stays
// the source of truth.
func getCached[T any](ctx context.Context, c cache.EntityCache, key string, ttl time.Duration, load func() (*T, error)) (*T, error) {
	if c != nil {
		var hit T
		found, err := c.Get(ctx, key, &hit)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache read failed")
		} else if found {
			return &hit, nil
		}
	}

	v, err := load()
	if err != nil {
		return nil, err
	}

	if c != nil {
		if err := c.Set(ctx, key, v, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return v, nil
}
