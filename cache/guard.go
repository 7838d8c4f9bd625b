package cache

import (
	"context"
	"sync"
	"time"
)

// Guarded counts invalidations per key. FindAndCache uses the count to drop a result
// whose fetch began before the most recent Delete of its key.
type Guarded struct {
	Cacher

	mu          sync.Mutex
	generations map[string]uint64
}

// Guard wraps c. Wrapping an already guarded cacher returns it unchanged.
func Guard(c Cacher) *Guarded {
	if g, ok := c.(*Guarded); ok {
		return g
	}
	return &Guarded{Cacher: c, generations: make(map[string]uint64)}
}

// Generation returns the number of times key has been deleted
func (g *Guarded) Generation(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generations[key]
}

func (g *Guarded) Delete(ctx context.Context, keys ...string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, key := range keys {
		g.generations[key]++
	}
	return g.Cacher.Delete(ctx, keys...)
}

// SetIfGeneration stores value only while key is still at generation gen
func (g *Guarded) SetIfGeneration(ctx context.Context, key string, value any, ttl time.Duration, gen uint64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.generations[key] != gen {
		return false, nil
	}
	return true, g.Cacher.Set(ctx, key, value, ttl)
}
