// Package service contains jobs listing workflows
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fundi/internal/modkit/repokit"
	perr "fundi/internal/platform/errors"
	"fundi/internal/services/api/jobs/domain"
	"fundi/internal/services/api/jobs/repo"
	statsdom "fundi/internal/services/feedstats/domain"
)

// DefaultPerPage matches the mobile clients' page size
const DefaultPerPage = 15

// MaxPerPage bounds how much one request can ask for
const MaxPerPage = 50

// Service defines the service contract for jobs
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	stats  statsdom.RecorderPort
}

// New creates a new jobs service. stats may be nil when analytics is off
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], stats statsdom.RecorderPort) *Svc {
	if db == nil {
		panic("jobs.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("jobs.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, stats: stats}
}

// Clamp normalizes page and perPage to safe values
func Clamp(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 || perPage > MaxPerPage {
		perPage = DefaultPerPage
	}
	return page, perPage
}

// LastPage computes the last page number for a total and page size
func LastPage(total, perPage int) int {
	if total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// List retrieves one page of jobs matching the filters
func (s *Svc) List(ctx context.Context, f domain.Filters, page, perPage int) ([]domain.Job, domain.PageMeta, error) {
	page, perPage = Clamp(page, perPage)
	start := time.Now()

	rows, total, err := s.Repo.List(ctx, f, perPage, (page-1)*perPage)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	meta := domain.PageMeta{
		CurrentPage: page,
		LastPage:    LastPage(total, perPage),
		PerPage:     perPage,
		Total:       total,
	}

	if s.stats != nil {
		s.stats.Record(ctx, statsdom.QueryEvent{
			Entity:     "jobs",
			Search:     f.Search,
			Filters:    fingerprint(f),
			Page:       page,
			PerPage:    perPage,
			Results:    len(rows),
			DurationMs: time.Since(start).Milliseconds(),
		})
	}
	return rows, meta, nil
}

// Get retrieves one job by id
func (s *Svc) Get(ctx context.Context, id string) (domain.Job, error) {
	return s.Repo.Get(ctx, id)
}

// Create posts a new job owned by the authenticated user
func (s *Svc) Create(ctx context.Context, ownerID string, in domain.CreateJob) (domain.Job, error) {
	if ownerID == "" {
		return domain.Job{}, perr.Unauthorizedf("missing bearer token")
	}
	if in.Budget.Max > 0 && in.Budget.Min > in.Budget.Max {
		return domain.Job{}, perr.Newf(perr.ErrorCodeValidation, "budget min exceeds max")
	}
	if !in.Deadline.IsZero() && !in.Deadline.After(time.Now()) {
		return domain.Job{}, perr.Newf(perr.ErrorCodeValidation, "deadline must be in the future")
	}
	if in.Budget.Currency == "" {
		in.Budget.Currency = "KES"
	}
	return s.Repo.Insert(ctx, uuid.NewString(), ownerID, in)
}

// fingerprint renders the active filters compactly for analytics
func fingerprint(f domain.Filters) string {
	var parts []string
	add := func(k, v string) {
		if v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	add("category", f.Category)
	add("location", f.Location)
	add("status", f.Status)
	if f.MinBudget > 0 || f.MaxBudget > 0 {
		add("budget", fmt.Sprintf("%d-%d", f.MinBudget, f.MaxBudget))
	}
	add("sort", f.SortKey)
	return strings.Join(parts, ";")
}
