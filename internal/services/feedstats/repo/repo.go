// Package repo provides the clickhouse sink for feed query events
package repo

import (
	"context"

	"fundi/internal/platform/store"
	"fundi/internal/services/feedstats/domain"
)

// CH writes query events to the feed_query_events table
type CH struct {
	DB store.Clickhouse
}

// NewCH constructs the clickhouse repo
func NewCH(db store.Clickhouse) *CH { return &CH{DB: db} }

// WriteBatch inserts a batch of query events
func (r *CH) WriteBatch(ctx context.Context, xs []domain.QueryEvent) error {
	if len(xs) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(xs))
	for _, ev := range xs {
		rows = append(rows, []any{
			ev.At,
			ev.Entity,
			ev.Client,
			ev.Search,
			ev.Filters,
			int32(ev.Page),
			int32(ev.PerPage),
			int32(ev.Results),
			ev.DurationMs,
		})
	}
	return r.DB.Insert(ctx, "feed_query_events", rows)
}
