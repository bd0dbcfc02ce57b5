package feed

import (
	"context"
	"time"

	perr "fundi/internal/platform/errors"
)

const (
	defaultMaxAttempts = 3
	defaultBackoffUnit = 2 * time.Second
)

// Retry wraps a fetch with bounded attempts and linear backoff: after
// attempt n fails, wait n x BackoffUnit before the next try.
// Deliberately linear, not exponential; the delays are part of the
// contract (2s then 4s at the defaults) and tests depend on them.
// Application-level failures retry the same as transport ones
type Retry struct {
	MaxAttempts int
	BackoffUnit time.Duration

	// Sleep is a seam for tests; nil means time.Sleep
	Sleep func(time.Duration)
}

func (r Retry) attempts() int {
	if r.MaxAttempts > 0 {
		return r.MaxAttempts
	}
	return defaultMaxAttempts
}

func (r Retry) unit() time.Duration {
	if r.BackoffUnit > 0 {
		return r.BackoffUnit
	}
	return defaultBackoffUnit
}

func (r Retry) sleep(d time.Duration) {
	if r.Sleep != nil {
		r.Sleep(d)
		return
	}
	time.Sleep(d)
}

// DoRetry runs op under the policy and returns the first success or the
// last error once attempts are exhausted. Success short-circuits; context
// cancellation stops further attempts immediately
func DoRetry[T any](ctx context.Context, r Retry, op func(context.Context) (T, error)) (T, error) {
	var zero T
	var last error
	for attempt := 1; attempt <= r.attempts(); attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, perr.Wrap(err, perr.ErrorCodeUnavailable, "fetch cancelled")
		}
		out, err := op(ctx)
		if err == nil {
			return out, nil
		}
		last = err
		if attempt < r.attempts() {
			r.sleep(time.Duration(attempt) * r.unit())
		}
	}
	return zero, last
}
