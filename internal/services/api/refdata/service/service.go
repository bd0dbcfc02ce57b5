// Package service serves marketplace reference data
package service

import (
	"context"

	"fundi/internal/modkit/repokit"
	"fundi/internal/services/api/refdata/domain"
	"fundi/internal/services/api/refdata/repo"
)

// Service defines the service contract for reference data
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo repo.Repo
}

// New creates a new refdata service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("refdata.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("refdata.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db)}
}

// Categories lists job and fundi categories
func (s *Svc) Categories(ctx context.Context) ([]string, error) { return s.Repo.Values(ctx, "category") }

// Skills lists known fundi skills
func (s *Svc) Skills(ctx context.Context) ([]string, error) { return s.Repo.Values(ctx, "skill") }

// Locations lists service locations
func (s *Svc) Locations(ctx context.Context) ([]string, error) { return s.Repo.Values(ctx, "location") }
