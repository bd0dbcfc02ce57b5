// Package domain holds types and ports for the payments history service
package domain

import (
	"context"
	"time"
)

// Payment is one payment record belonging to a user
type Payment struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Filters is the server-side filter set for the payments list
type Filters struct {
	Status string
	Method string
	JobID  string
}

// PageMeta describes one result page
type PageMeta struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// ServicePort is the payments service contract. Every operation is
// scoped to the authenticated user
type ServicePort interface {
	List(ctx context.Context, userID string, f Filters, page, perPage int) ([]Payment, PageMeta, error)
	Get(ctx context.Context, userID, id string) (Payment, error)
}
