// Package domain holds types and ports for the fundis listing service
package domain

import (
	"context"
	"time"
)

// Fundi is one tradesperson listing as served to clients
type Fundi struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Category      string    `json:"category"`
	Skills        []string  `json:"skills"`
	Rating        float64   `json:"rating"`
	JobsCompleted int       `json:"jobs_completed"`
	Verified      bool      `json:"verified"`
	Bio           string    `json:"bio"`
	CreatedAt     time.Time `json:"created_at"`
}

// Filters is the server-side filter set for the fundis list
type Filters struct {
	Search       string
	Location     string
	Category     string
	Skills       []string
	MinRating    float64
	VerifiedOnly bool
	SortKey      string
	SortDesc     bool
}

// PageMeta describes one result page
type PageMeta struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// ServicePort is the fundis service contract
type ServicePort interface {
	List(ctx context.Context, f Filters, page, perPage int) ([]Fundi, PageMeta, error)
	Get(ctx context.Context, id string) (Fundi, error)
}
