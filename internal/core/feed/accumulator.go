package feed

import (
	"slices"
	"sync"
)

// Record is implemented by every entity the feed engine can accumulate
type Record interface {
	RecordID() string
}

// Page is one fetched page of records.
// HasMore carries the backend's explicit pagination signal when the endpoint
// provides one; nil means "not reported" and the accumulator falls back to
// short-page detection (fewer records than the requested page size)
type Page[T Record] struct {
	Records []T
	HasMore *bool
}

// Phase is the accumulator load state
type Phase int

// Accumulator phases: Idle -> Refreshing|Appending -> Idle
const (
	PhaseIdle Phase = iota
	PhaseRefreshing
	PhaseAppending
)

// Accumulator owns the ordered in-memory list of fetched records for the
// active query. Replace serves fresh searches, Append serves load-more.
// Duplicate suppression on append is on by default and keyed by RecordID;
// the observed backend can return overlapping pages around concurrent
// writes, and rendering the same fundi twice is never what anyone wants.
// Disable with WithoutDedupe to get raw concatenation
type Accumulator[T Record] struct {
	mu      sync.Mutex
	perPage int
	dedupe  bool
	seen    map[string]struct{}
	records []T
	cursor  Cursor
	phase   Phase
	errMsg  string
}

// AccumulatorOption configures an Accumulator
type AccumulatorOption func(*accumulatorConfig)

type accumulatorConfig struct {
	perPage int
	dedupe  bool
}

// WithPerPage overrides the page size used for short-page detection
func WithPerPage(n int) AccumulatorOption {
	return func(c *accumulatorConfig) {
		if n > 0 {
			c.perPage = n
		}
	}
}

// WithoutDedupe disables duplicate suppression on append
func WithoutDedupe() AccumulatorOption {
	return func(c *accumulatorConfig) { c.dedupe = false }
}

// DefaultPerPage is the backend's default page size
const DefaultPerPage = 15

// NewAccumulator returns an empty accumulator ready for page 1
func NewAccumulator[T Record](opts ...AccumulatorOption) *Accumulator[T] {
	cfg := accumulatorConfig{perPage: DefaultPerPage, dedupe: true}
	for _, o := range opts {
		o(&cfg)
	}
	return &Accumulator[T]{
		perPage: cfg.perPage,
		dedupe:  cfg.dedupe,
		seen:    map[string]struct{}{},
		cursor:  NewCursor(),
	}
}

// Records returns a copy of the accumulated records in arrival order
func (a *Accumulator[T]) Records() []T {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.records)
}

// Len returns the number of accumulated records
func (a *Accumulator[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.records)
}

// Cursor returns the current page cursor
func (a *Accumulator[T]) Cursor() Cursor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cursor
}

// HasMore reports whether another page may exist
func (a *Accumulator[T]) HasMore() bool { return a.Cursor().HasMore }

// PerPage returns the page size used for short-page detection
func (a *Accumulator[T]) PerPage() int { return a.perPage }

// Phase returns the current load phase
func (a *Accumulator[T]) Phase() Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase
}

// Loading reports whether a fetch is in flight
func (a *Accumulator[T]) Loading() bool { return a.Phase() != PhaseIdle }

// ErrorMessage returns the recorded error message, empty when none
func (a *Accumulator[T]) ErrorMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

// DisplayError returns the error message only when there is nothing to
// render instead; errors never displace already-fetched content
func (a *Accumulator[T]) DisplayError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.records) > 0 {
		return ""
	}
	return a.errMsg
}

// Begin claims the in-flight slot for the given phase.
// Returns false when another fetch is already in flight; overlapping
// refresh/append are rejected synchronously, never queued
func (a *Accumulator[T]) Begin(p Phase) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.phase != PhaseIdle || p == PhaseIdle {
		return false
	}
	a.phase = p
	return true
}

// Reset drops all content and rewinds the cursor to page 1.
// Called when any filter's effective value changes
func (a *Accumulator[T]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = nil
	a.seen = map[string]struct{}{}
	a.cursor = NewCursor()
	a.errMsg = ""
}

// Replace installs a fresh page 1, discarding prior contents
func (a *Accumulator[T]) Replace(p Page[T]) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = nil
	a.seen = map[string]struct{}{}
	a.cursor = NewCursor()
	a.merge(p)
	a.phase = PhaseIdle
	a.errMsg = ""
}

// Append concatenates a fetched page onto the existing sequence,
// preserving arrival order, and advances the cursor
func (a *Accumulator[T]) Append(p Page[T]) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.merge(p)
	a.phase = PhaseIdle
	a.errMsg = ""
}

// merge applies one page and advances the cursor; callers hold the lock
func (a *Accumulator[T]) merge(p Page[T]) {
	for _, r := range p.Records {
		if a.dedupe {
			id := r.RecordID()
			if id != "" {
				if _, dup := a.seen[id]; dup {
					continue
				}
				a.seen[id] = struct{}{}
			}
		}
		a.records = append(a.records, r)
	}
	if p.HasMore != nil {
		a.cursor.Advance(*p.HasMore)
		return
	}
	a.cursor.Advance(len(p.Records) >= a.perPage)
}

// Fail records a fetch failure. The cursor is left untouched so a retry
// reuses the same page, and existing records stay visible
func (a *Accumulator[T]) Fail(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.phase = PhaseIdle
	a.errMsg = msg
}
