package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

// FindAndCache reads key through c. On a miss, concurrent callers for the same key
// share a single fetch and the result is stored for ttl. Cache failures are logged and
// treated as misses; only fetch errors reach the caller.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *slog.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = slog.Default()
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", "key", key)
		return cached, nil

	case errors.Is(err, ErrMiss):
		logger.Debug("cache miss", "key", key)

	default:
		logger.Warn("cache get error (treating as miss)", "key", key, "error", err)
	}

	// A guarded cacher keys the flight by generation so callers arriving after an
	// invalidation never join a fetch that started before it.
	guard, guarded := c.(*Guarded)
	var gen uint64
	flightKey := key
	if guarded {
		gen = guard.Generation(key)
		flightKey = fmt.Sprintf("%s#%d", key, gen)
	}

	v, err, shared := sf.Do(flightKey, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return zero, err
		}

		if guarded {
			stored, err := guard.SetIfGeneration(ctx, key, value, ttl, gen)
			if err != nil {
				logger.Warn("failed to set cache on miss", "key", key, "error", err)
			} else if !stored {
				logger.Debug("key invalidated during fetch, result not cached", "key", key)
			}
			return value, nil
		}

		if err := c.Set(ctx, key, value, ttl); err != nil {
			logger.Warn("failed to set cache on miss", "key", key, "error", err)
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", "key", key)
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		logger.Debug("singleflight shared result", "key", key)
	}

	return value, nil
}
