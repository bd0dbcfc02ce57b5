package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	perr "fundi/internal/platform/errors"
)

// fakeClock is a settable clock for TTL tests
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func TestRefCacheServesFreshWithoutFetching(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := NewRefCache(WithNow(clk.now))

	fetches := 0
	fetch := func(context.Context) ([]string, error) {
		fetches++
		return []string{"plumbing", "wiring"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := c.GetOrFetch(context.Background(), "skills", fetch)
		if err != nil {
			t.Fatalf("GetOrFetch: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("values = %v", got)
		}
		clk.advance(time.Minute)
	}
	if fetches != 1 {
		t.Fatalf("fetches = %d, want 1 within TTL", fetches)
	}
}

func TestRefCacheRefetchesAfterTTL(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := NewRefCache(WithNow(clk.now))

	fetches := 0
	fetch := func(context.Context) ([]string, error) {
		fetches++
		return []string{"Nairobi"}, nil
	}

	if _, err := c.GetOrFetch(context.Background(), "locations", fetch); err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	clk.advance(5*time.Minute + time.Second)
	if _, err := c.GetOrFetch(context.Background(), "locations", fetch); err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	if fetches != 2 {
		t.Fatalf("fetches = %d, want 2 after TTL expiry", fetches)
	}
}

func TestRefCacheDegradesToStaleValueOnFailure(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := NewRefCache(WithNow(clk.now))

	good := func(context.Context) ([]string, error) { return []string{"masonry"}, nil }
	bad := func(context.Context) ([]string, error) { return nil, perr.Unavailablef("backend down") }

	if _, err := c.GetOrFetch(context.Background(), "categories", good); err != nil {
		t.Fatalf("seed fetch: %v", err)
	}
	clk.advance(6 * time.Minute)

	got, err := c.GetOrFetch(context.Background(), "categories", bad)
	if err != nil {
		t.Fatalf("stale value should absorb the failure: %v", err)
	}
	if len(got) != 1 || got[0] != "masonry" {
		t.Fatalf("got %v, want prior cached value", got)
	}
}

func TestRefCacheSurfacesErrorWithNoPriorValue(t *testing.T) {
	c := NewRefCache()
	bad := func(context.Context) ([]string, error) { return nil, perr.Unavailablef("backend down") }
	if _, err := c.GetOrFetch(context.Background(), "categories", bad); err == nil {
		t.Fatalf("expected error with no cached fallback")
	}
}

func TestRefCacheForcedRefreshBypassesTTL(t *testing.T) {
	clk := &fakeClock{t: time.Unix(1000, 0)}
	c := NewRefCache(WithNow(clk.now))

	fetches := 0
	fetch := func(context.Context) ([]string, error) {
		fetches++
		return []string{"roofing"}, nil
	}

	if _, err := c.GetOrFetch(context.Background(), "skills", fetch); err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	if _, err := c.Refresh(context.Background(), "skills", fetch); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if fetches != 2 {
		t.Fatalf("fetches = %d, forced refresh must not consult TTL", fetches)
	}
}

func TestRefCacheCoalescesConcurrentFetches(t *testing.T) {
	c := NewRefCache()

	var mu sync.Mutex
	fetches := 0
	gate := make(chan struct{})
	fetch := func(context.Context) ([]string, error) {
		mu.Lock()
		fetches++
		mu.Unlock()
		<-gate
		return []string{"tiling"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.GetOrFetch(context.Background(), "skills", fetch); err != nil {
				t.Errorf("GetOrFetch: %v", err)
			}
		}()
	}
	// let the goroutines pile onto the same key then release the fetch
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if fetches != 1 {
		t.Fatalf("fetches = %d, concurrent callers should coalesce", fetches)
	}
}
