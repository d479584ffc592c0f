package middleware

import (
	"time"

	"github.com/guttosm/recipe-cost-service/internal/cache"
)

// idempotencyCacheCapacity bounds how many replayable responses are kept.
const idempotencyCacheCapacity = 4096

// idempotencyCache stores cached HTTP responses for idempotency, backed by
// the sharded TTL cache so stale replays age out and memory stays bounded.
type idempotencyCache struct {
	store *cache.Sharded[*cachedResponse]
}

// newIdempotencyCache creates a new idempotency cache.
func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	return &idempotencyCache{
		store: cache.NewSharded[*cachedResponse](idempotencyCacheCapacity, ttl, 16),
	}
}

// Get retrieves a cached response.
func (c *idempotencyCache) Get(key int) (*cachedResponse, bool) {
	return c.store.Get(key)
}

// Set stores a cached response.
func (c *idempotencyCache) Set(key int, resp *cachedResponse) {
	resp.Timestamp = time.Now()
	c.store.Set(key, resp)
}

// Stop shuts down the backing cache.
func (c *idempotencyCache) Stop() {
	c.store.Stop()
}
