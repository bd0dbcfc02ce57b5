package feed

import (
	"context"
	"sync/atomic"

	perr "fundi/internal/platform/errors"
	"fundi/internal/platform/logger"
)

// Fetcher loads one page of records for a query.
// Implementations must not mutate the query or touch the accumulator;
// state updates are the feed's job after a successful result
type Fetcher[T Record] interface {
	FetchPage(ctx context.Context, q *Query, page, perPage int) (Page[T], error)
}

// FetchFunc adapts a function to the Fetcher interface
type FetchFunc[T Record] func(ctx context.Context, q *Query, page, perPage int) (Page[T], error)

// FetchPage implements Fetcher
func (f FetchFunc[T]) FetchPage(ctx context.Context, q *Query, page, perPage int) (Page[T], error) {
	return f(ctx, q, page, perPage)
}

// AuthGate reports whether the session may issue backend calls
type AuthGate interface {
	Authenticated() bool
}

// Feed ties a query, a fetcher, and an accumulator into one session:
// Refresh replaces, LoadMore appends, filter edits reset pagination.
// One Feed per screen per entity; nothing here is shared across screens
type Feed[T Record] struct {
	entity  string
	fetcher Fetcher[T]
	gate    AuthGate
	retry   Retry
	query   *Query
	acc     *Accumulator[T]
	log     logger.Logger
	closed  atomic.Bool
}

// FeedOption configures a Feed
type FeedOption[T Record] func(*Feed[T])

// WithAuthGate installs the pre-flight authentication check
func WithAuthGate[T Record](g AuthGate) FeedOption[T] {
	return func(f *Feed[T]) { f.gate = g }
}

// WithRetry overrides the retry policy
func WithRetry[T Record](r Retry) FeedOption[T] {
	return func(f *Feed[T]) { f.retry = r }
}

// WithAccumulator overrides the accumulator, e.g. for a custom page size
func WithAccumulator[T Record](a *Accumulator[T]) FeedOption[T] {
	return func(f *Feed[T]) { f.acc = a }
}

// New constructs a feed session for the named entity ("fundis", "jobs", ...).
// The entity name appears in user-facing messages
func New[T Record](entity string, fetcher Fetcher[T], opts ...FeedOption[T]) *Feed[T] {
	if fetcher == nil {
		panic("feed.New requires a non nil fetcher")
	}
	f := &Feed[T]{
		entity:  entity,
		fetcher: fetcher,
		query:   NewQuery(),
		acc:     NewAccumulator[T](),
		log:     *logger.Named("feed." + entity),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Query returns a snapshot of the current query for reading.
// Mutations go through Update so pagination resets correctly
func (f *Feed[T]) Query() Query { return *f.query }

// Accumulator exposes the accumulated state for rendering
func (f *Feed[T]) Accumulator() *Accumulator[T] { return f.acc }

// Update applies a query mutation. When the mutation reports an effective
// change the accumulator is cleared and pagination rewinds to page 1;
// a no-op edit (same value set again) leaves pagination untouched
func (f *Feed[T]) Update(mutate func(q *Query) bool) {
	if mutate(f.query) {
		f.acc.Reset()
	}
}

// Refresh fetches page 1 and replaces the accumulator contents.
// No-op when another fetch for this accumulator is already in flight
func (f *Feed[T]) Refresh(ctx context.Context) error {
	if err := f.gateCheck(); err != nil {
		f.acc.Fail(perr.WireFrom(err).Message)
		return err
	}
	if !f.acc.Begin(PhaseRefreshing) {
		return nil
	}
	page, err := DoRetry(ctx, f.retry, func(ctx context.Context) (Page[T], error) {
		return f.fetcher.FetchPage(ctx, f.query, 1, f.acc.PerPage())
	})
	if f.closed.Load() {
		// screen went away while we were in flight; drop the result
		f.acc.Fail("")
		return nil
	}
	if err != nil {
		msg := perr.WireFrom(err).Message
		f.log.Warn().Err(err).Str("entity", f.entity).Msg("feed refresh failed")
		f.acc.Fail(msg)
		return err
	}
	f.acc.Replace(page)
	return nil
}

// LoadMore fetches the next page and appends it. No-op when no more pages
// exist or another fetch is already in flight
func (f *Feed[T]) LoadMore(ctx context.Context) error {
	if err := f.gateCheck(); err != nil {
		f.acc.Fail(perr.WireFrom(err).Message)
		return err
	}
	cur := f.acc.Cursor()
	if !cur.HasMore {
		return nil
	}
	if !f.acc.Begin(PhaseAppending) {
		return nil
	}
	page, err := DoRetry(ctx, f.retry, func(ctx context.Context) (Page[T], error) {
		return f.fetcher.FetchPage(ctx, f.query, cur.Next, f.acc.PerPage())
	})
	if f.closed.Load() {
		f.acc.Fail("")
		return nil
	}
	if err != nil {
		msg := perr.WireFrom(err).Message
		f.log.Warn().Err(err).Str("entity", f.entity).Int("page", cur.Next).Msg("feed load more failed")
		f.acc.Fail(msg)
		return err
	}
	f.acc.Append(page)
	return nil
}

// Close marks the session torn down; in-flight results are discarded
// instead of being applied to a dead screen
func (f *Feed[T]) Close() { f.closed.Store(true) }

func (f *Feed[T]) gateCheck() error {
	if f.gate == nil || f.gate.Authenticated() {
		return nil
	}
	return perr.Unauthorizedf("Please log in to view %s", f.entity)
}
