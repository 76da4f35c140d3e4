package directory

import (
	"sync"
	"time"

	"github.com/marinfc/tournament-directory/internal/tournament"
)

// defaultTTL bounds staleness even when dataset files never change, so a
// clock-skewed or mtime-preserving deploy still refreshes eventually.
const defaultTTL = 5 * time.Minute

// mergeCache holds the last merged catalog, keyed by the storage
// generation token. A generation change or TTL expiry invalidates it.
type mergeCache struct {
	mu          sync.Mutex
	ttl         time.Duration
	generation  string
	cachedAt    time.Time
	records     []tournament.Record
	lastUpdated string
}

func newMergeCache(ttl time.Duration) *mergeCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &mergeCache{ttl: ttl}
}

// Get returns the cached catalog if it matches the generation and has not
// expired.
func (c *mergeCache) Get(generation string) ([]tournament.Record, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.records == nil || c.generation != generation || time.Since(c.cachedAt) > c.ttl {
		return nil, "", false
	}
	return c.records, c.lastUpdated, true
}

// Set stores a freshly merged catalog for the given generation.
func (c *mergeCache) Set(generation string, records []tournament.Record, lastUpdated string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation = generation
	c.cachedAt = time.Now()
	c.records = records
	c.lastUpdated = lastUpdated
}
