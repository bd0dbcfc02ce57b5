// Package domain holds types and ports for the jobs listing service
package domain

import (
	"context"
	"time"
)

// Budget is a job's budget range
type Budget struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// Job is one posted job as served to clients. Deadline is optional;
// jobs without one simply never expire
type Job struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Budget      Budget     `json:"budget"`
	Status      string     `json:"status"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateJob is the validated payload for posting a new job.
// Deadline may be omitted for open-ended jobs
type CreateJob struct {
	Title       string    `json:"title" validate:"required,min=5,max=120"`
	Description string    `json:"description" validate:"required,min=10"`
	Category    string    `json:"category" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Budget      Budget    `json:"budget"`
	Deadline    time.Time `json:"deadline"`
}

// Filters is the server-side filter set for the jobs list
type Filters struct {
	Search    string
	Category  string
	Location  string
	Status    string
	MinBudget int64
	MaxBudget int64
	SortKey   string
	SortDesc  bool
}

// PageMeta describes one result page
type PageMeta struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// ServicePort is the jobs service contract
type ServicePort interface {
	List(ctx context.Context, f Filters, page, perPage int) ([]Job, PageMeta, error)
	Get(ctx context.Context, id string) (Job, error)
	Create(ctx context.Context, ownerID string, in CreateJob) (Job, error)
}
