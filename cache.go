package folio

import (
	"context"
	"sync"
	"time"

	"github.com/harshilpatel/folio/visits"
)

// StatsLoader reads the durable visit aggregate.
type StatsLoader interface {
	Load(ctx context.Context) (visits.Stats, error)
}

// StatsCache is an in-memory cache of the visit aggregate with TTL. It keeps
// the admin dashboard from hitting SQLite on every refresh.
type StatsCache struct {
	mu      sync.RWMutex
	stats   visits.Stats
	fetched time.Time
	ttl     time.Duration
	store   StatsLoader
}

// NewStatsCache creates a StatsCache backed by the given store.
func NewStatsCache(s StatsLoader, ttl time.Duration) *StatsCache {
	return &StatsCache{store: s, ttl: ttl}
}

func (c *StatsCache) valid() bool {
	return c.stats != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *StatsCache) Invalidate() {
	c.mu.Lock()
	c.stats = nil
	c.mu.Unlock()
}

// Stats returns a copy of the cached aggregate and when it was loaded.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *StatsCache) Stats(ctx context.Context) (visits.Stats, time.Time, error) {
	c.mu.RLock()
	if c.valid() {
		out, at := copyStats(c.stats), c.fetched
		c.mu.RUnlock()
		return out, at, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.valid() {
		stats, err := c.store.Load(ctx)
		if err != nil {
			return nil, time.Time{}, err
		}
		c.stats = stats
		c.fetched = time.Now()
	}
	return copyStats(c.stats), c.fetched, nil
}

func copyStats(s visits.Stats) visits.Stats {
	out := make(visits.Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
