// Package repo provides postgres access for reference data
package repo

import (
	"context"

	"fundi/internal/modkit/repokit"
	perr "fundi/internal/platform/errors"
)

// Repo defines the repository contract for reference data
type Repo interface {
	Values(ctx context.Context, kind string) ([]string, error)
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

// Values returns the ordered value list for one reference kind
func (r *queries) Values(ctx context.Context, kind string) ([]string, error) {
	const sql = `SELECT value FROM ref_values WHERE kind = $1 ORDER BY position, value`
	rows, err := r.q.Query(ctx, sql, kind)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "refdata query failed")
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeDB, "refdata scan failed")
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
