// Package repo provides postgres access for jobs
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"fundi/internal/modkit/repokit"
	perr "fundi/internal/platform/errors"
	ptime "fundi/internal/platform/time"
	"fundi/internal/services/api/jobs/domain"
)

// Repo defines the repository contract for jobs
type Repo interface {
	List(ctx context.Context, f domain.Filters, limit, offset int) ([]domain.Job, int, error)
	Get(ctx context.Context, id string) (domain.Job, error)
	Insert(ctx context.Context, id, ownerID string, in domain.CreateJob) (domain.Job, error)
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// sortColumn whitelists sortable columns; anything else falls back to created_at
func sortColumn(key string) string {
	switch key {
	case "deadline":
		return "deadline"
	case "budget":
		return "budget_max"
	case "title":
		return "title"
	case "created_at":
		return "created_at"
	default:
		return "created_at"
	}
}

const jobColumns = `id::text, title, description, category, location,
budget_min, budget_max, budget_currency, status, deadline, created_at`

func (r *queries) List(ctx context.Context, f domain.Filters, limit, offset int) ([]domain.Job, int, error) {
	var where strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	where.WriteString("WHERE true\n")
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		fmt.Fprintf(&where, "  AND (title ILIKE %s OR description ILIKE %s)\n", p, p)
	}
	if f.Category != "" {
		fmt.Fprintf(&where, "  AND category = %s\n", arg(f.Category))
	}
	if f.Location != "" {
		fmt.Fprintf(&where, "  AND location = %s\n", arg(f.Location))
	}
	if f.Status != "" {
		fmt.Fprintf(&where, "  AND status = %s\n", arg(f.Status))
	}
	if f.MinBudget > 0 {
		fmt.Fprintf(&where, "  AND budget_max >= %s\n", arg(f.MinBudget))
	}
	if f.MaxBudget > 0 {
		fmt.Fprintf(&where, "  AND budget_min <= %s\n", arg(f.MaxBudget))
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM jobs "+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "jobs count failed")
	}

	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	sql := fmt.Sprintf("SELECT %s\nFROM jobs\n%s ORDER BY %s %s, id %s LIMIT %s OFFSET %s",
		jobColumns, where.String(), sortColumn(f.SortKey), dir, dir, arg(limit), arg(offset))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "jobs list failed")
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := scanJob(rows, &j); err != nil {
			return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "jobs scan failed")
		}
		out = append(out, j)
	}
	return out, total, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (domain.Job, error) {
	sql := fmt.Sprintf("SELECT %s\nFROM jobs WHERE id = $1::uuid", jobColumns)
	var j domain.Job
	err := scanJob(r.q.QueryRow(ctx, sql, id), &j)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Job{}, perr.NotFoundf("job %s not found", id)
		}
		return domain.Job{}, perr.FromPostgres(err, "job get failed")
	}
	return j, nil
}

func (r *queries) Insert(ctx context.Context, id, ownerID string, in domain.CreateJob) (domain.Job, error) {
	sql := fmt.Sprintf(`
INSERT INTO jobs (id, owner_id, title, description, category, location,
                  budget_min, budget_max, budget_currency, status, deadline, created_at)
VALUES ($1::uuid, $2::uuid, $3, $4, $5, $6, $7, $8, $9, 'open', $10, now())
RETURNING %s`, jobColumns)

	// a zero deadline is stored as NULL, not year one
	var j domain.Job
	err := scanJob(r.q.QueryRow(ctx, sql,
		id, ownerID, in.Title, in.Description, in.Category, in.Location,
		in.Budget.Min, in.Budget.Max, in.Budget.Currency, ptime.Ptr(in.Deadline),
	), &j)
	if err != nil {
		return domain.Job{}, perr.FromPostgres(err, "job insert failed")
	}
	return j, nil
}

// scanner covers pgx.Row and pgx.Rows
type scanner interface{ Scan(dest ...any) error }

func scanJob(s scanner, j *domain.Job) error {
	return s.Scan(
		&j.ID,
		&j.Title,
		&j.Description,
		&j.Category,
		&j.Location,
		&j.Budget.Min,
		&j.Budget.Max,
		&j.Budget.Currency,
		&j.Status,
		&j.Deadline,
		&j.CreatedAt,
	)
}
