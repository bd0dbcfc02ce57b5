// Package repo provides postgres access for payments
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"fundi/internal/modkit/repokit"
	perr "fundi/internal/platform/errors"
	"fundi/internal/services/api/payments/domain"
)

// Repo defines the repository contract for payments
type Repo interface {
	ListForUser(ctx context.Context, userID string, f domain.Filters, limit, offset int) ([]domain.Payment, int, error)
	GetForUser(ctx context.Context, userID, id string) (domain.Payment, error)
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

func (r *queries) ListForUser(
	ctx context.Context,
	userID string,
	f domain.Filters,
	limit, offset int,
) ([]domain.Payment, int, error) {
	var where strings.Builder
	var args []any
	arg := func(v any) string { args = append(args, v); return fmt.Sprintf("$%d", len(args)) }

	fmt.Fprintf(&where, "WHERE user_id = %s::uuid\n", arg(userID))
	if f.Status != "" {
		fmt.Fprintf(&where, "  AND status = %s\n", arg(f.Status))
	}
	if f.Method != "" {
		fmt.Fprintf(&where, "  AND method = %s\n", arg(f.Method))
	}
	if f.JobID != "" {
		fmt.Fprintf(&where, "  AND job_id = %s::uuid\n", arg(f.JobID))
	}

	var total int
	if err := r.q.QueryRow(ctx, "SELECT count(*) FROM payments "+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "payments count failed")
	}

	sql := fmt.Sprintf(`
SELECT id::text, job_id::text, amount, currency, method, status, created_at
FROM payments
%s ORDER BY created_at DESC, id DESC LIMIT %s OFFSET %s`,
		where.String(), arg(limit), arg(offset))

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "payments list failed")
	}
	defer rows.Close()

	var out []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, 0, perr.Wrap(err, perr.ErrorCodeDB, "payments scan failed")
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *queries) GetForUser(ctx context.Context, userID, id string) (domain.Payment, error) {
	const sql = `
SELECT id::text, job_id::text, amount, currency, method, status, created_at
FROM payments WHERE user_id = $1::uuid AND id = $2::uuid`
	var p domain.Payment
	if err := scanPayment(r.q.QueryRow(ctx, sql, userID, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, perr.NotFoundf("payment %s not found", id)
		}
		return domain.Payment{}, perr.FromPostgres(err, "payment get failed")
	}
	return p, nil
}

// scanner covers pgx.Row and pgx.Rows
type scanner interface{ Scan(dest ...any) error }

func scanPayment(s scanner, p *domain.Payment) error {
	return s.Scan(
		&p.ID,
		&p.JobID,
		&p.Amount,
		&p.Currency,
		&p.Method,
		&p.Status,
		&p.CreatedAt,
	)
}
