// Package repo provides postgres access for fundis
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"fundi/internal/modkit/repokit"
	perr "fundi/internal/platform/errors"
	"fundi/internal/services/api/fundis/domain"
)

// Repo defines the repository contract for fundis
type Repo interface {
	List(ctx context.Context, f domain.Filters, limit, offset int) ([]domain.Fundi, int, error)
	Get(ctx context.Context, id string) (domain.Fundi, error)
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

// sortColumn whitelists sortable columns; anything else falls back to rating
func sortColumn(key string) string {
	switch key {
	case "rating":
		return "rating"
	case "jobs_completed":
		return "jobs_completed"
	case "name":
		return "name"
	case "created_at":
		return "created_at"
	default:
		return "rating"
	}
}

func (r *queries) List(ctx context.Context, f domain.Filters, limit, offset int) ([]domain.Fundi, int, error) {
	var where strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	where.WriteString("WHERE true\n")
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		fmt.Fprintf(&where, "  AND (name ILIKE %s OR bio ILIKE %s)\n", p, p)
	}
	if f.Location != "" {
		fmt.Fprintf(&where, "  AND location = %s\n", arg(f.Location))
	}
	if f.Category != "" {
		fmt.Fprintf(&where, "  AND category = %s\n", arg(f.Category))
	}
	if len(f.Skills) > 0 {
		fmt.Fprintf(&where, "  AND skills && %s\n", arg(f.Skills))
	}
	if f.MinRating > 0 {
		fmt.Fprintf(&where, "  AND rating >= %s\n", arg(f.MinRating))
	}
	if f.VerifiedOnly {
		where.WriteString("  AND verified\n")
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM fundis "+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "fundis count failed")
	}

	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	sql := fmt.Sprintf(`
SELECT id::text, name, location, category, skills, rating, jobs_completed, verified, bio, created_at
FROM fundis
%s ORDER BY %s %s, id %s LIMIT %s OFFSET %s`,
		where.String(), sortColumn(f.SortKey), dir, dir, arg(limit), arg(offset))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "fundis list failed")
	}
	defer rows.Close()

	var out []domain.Fundi
	for rows.Next() {
		var fd domain.Fundi
		if err := rows.Scan(
			&fd.ID,
			&fd.Name,
			&fd.Location,
			&fd.Category,
			&fd.Skills,
			&fd.Rating,
			&fd.JobsCompleted,
			&fd.Verified,
			&fd.Bio,
			&fd.CreatedAt,
		); err != nil {
			return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "fundis scan failed")
		}
		out = append(out, fd)
	}
	return out, total, rows.Err()
}

func (r *queries) Get(ctx context.Context, id string) (domain.Fundi, error) {
	const sql = `
SELECT id::text, name, location, category, skills, rating, jobs_completed, verified, bio, created_at
FROM fundis WHERE id = $1::uuid`
	var fd domain.Fundi
	err := r.q.QueryRow(ctx, sql, id).Scan(
		&fd.ID,
		&fd.Name,
		&fd.Location,
		&fd.Category,
		&fd.Skills,
		&fd.Rating,
		&fd.JobsCompleted,
		&fd.Verified,
		&fd.Bio,
		&fd.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Fundi{}, perr.NotFoundf("fundi %s not found", id)
		}
		return domain.Fundi{}, perr.FromPostgres(err, "fundi get failed")
	}
	return fd, nil
}
