package feed

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long reference lists are served without re-fetching
const DefaultTTL = 5 * time.Minute

// FetchList loads one reference list (categories, skills, locations)
type FetchList func(ctx context.Context) ([]string, error)

// RefCache is the staleness cache for slow-changing reference lists.
// Values are served from memory until the TTL elapses; a refresh that
// fails falls back to the previous value when one exists. Concurrent
// callers asking for the same stale key coalesce into a single fetch
type RefCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]refEntry
	group   singleflight.Group
}

type refEntry struct {
	values    []string
	fetchedAt time.Time
}

// RefCacheOption configures a RefCache
type RefCacheOption func(*RefCache)

// WithTTL overrides the staleness TTL
func WithTTL(d time.Duration) RefCacheOption {
	return func(c *RefCache) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithNow injects a clock for tests
func WithNow(now func() time.Time) RefCacheOption {
	return func(c *RefCache) { c.now = now }
}

// NewRefCache returns an empty cache with the default 5 minute TTL
func NewRefCache(opts ...RefCacheOption) *RefCache {
	c := &RefCache{
		ttl:     DefaultTTL,
		now:     time.Now,
		entries: map[string]refEntry{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GetOrFetch returns the cached list for key while it is fresh, otherwise
// fetches. A failed fetch degrades to the prior cached value when one
// exists; with no prior value the fetch error is surfaced
func (c *RefCache) GetOrFetch(ctx context.Context, key string, fetch FetchList) ([]string, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	fresh := ok && c.now().Sub(e.fetchedAt) <= c.ttl
	c.mu.Unlock()

	if fresh {
		return e.values, nil
	}
	return c.refresh(ctx, key, fetch)
}

// Refresh fetches unconditionally, bypassing the TTL check.
// Degradation on failure matches GetOrFetch
func (c *RefCache) Refresh(ctx context.Context, key string, fetch FetchList) ([]string, error) {
	return c.refresh(ctx, key, fetch)
}

func (c *RefCache) refresh(ctx context.Context, key string, fetch FetchList) ([]string, error) {
	v, err, _ := c.group.Do(key, func() (any, error) {
		vals, err := fetch(ctx)
		if err != nil {
			c.mu.Lock()
			prior, ok := c.entries[key]
			c.mu.Unlock()
			if ok {
				// stale beats broken
				return prior.values, nil
			}
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = refEntry{values: vals, fetchedAt: c.now()}
		c.mu.Unlock()
		return vals, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}
