// Package service contains payments history workflows
package service

import (
	"context"

	"fundi/internal/modkit/repokit"
	perr "fundi/internal/platform/errors"
	"fundi/internal/services/api/payments/domain"
	"fundi/internal/services/api/payments/repo"
)

// DefaultPerPage matches the mobile clients' page size
const DefaultPerPage = 15

// MaxPerPage bounds how much one request can ask for
const MaxPerPage = 50

// Service defines the service contract for payments
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new payments service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("payments.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("payments.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// List retrieves one page of the user's payments, newest first
func (s *Svc) List(
	ctx context.Context,
	userID string,
	f domain.Filters,
	page, perPage int,
) ([]domain.Payment, domain.PageMeta, error) {
	if userID == "" {
		return nil, domain.PageMeta{}, perr.Unauthorizedf("missing bearer token")
	}
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}

	rows, total, err := s.Repo.ListForUser(ctx, userID, f, perPage, (page-1)*perPage)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	last := 1
	if total > 0 {
		last = (total + perPage - 1) / perPage
	}
	return rows, domain.PageMeta{
		CurrentPage: page,
		LastPage:    last,
		PerPage:     perPage,
		Total:       total,
	}, nil
}

// Get retrieves one of the user's payments by id
func (s *Svc) Get(ctx context.Context, userID, id string) (domain.Payment, error) {
	if userID == "" {
		return domain.Payment{}, perr.Unauthorizedf("missing bearer token")
	}
	return s.Repo.GetForUser(ctx, userID, id)
}
