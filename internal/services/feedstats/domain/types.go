// Package domain holds types and ports for feed query analytics
package domain

import (
	"context"
	"time"
)

// QueryEvent is one recorded feed query
type QueryEvent struct {
	At         time.Time
	Entity     string // fundis, jobs, payments
	Client     string // calling app, from request scope
	Search     string
	Filters    string // compact fingerprint of the active filters
	Page       int
	PerPage    int
	Results    int
	DurationMs int64
}

// RecorderPort records feed query events. Implementations must be safe
// to call fire-and-forget from request handlers
type RecorderPort interface {
	Record(ctx context.Context, ev QueryEvent)
}
