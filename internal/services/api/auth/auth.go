// Package auth provides the bearer-token port backed by the sessions table
package auth

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"

	"fundi/internal/modkit/httpkit"
	"fundi/internal/modkit/repokit"
	perr "fundi/internal/platform/errors"
)

// SessionPort implements middleware.AuthPort against opaque session
// tokens issued at login
type SessionPort struct {
	db repokit.TxRunner
}

// NewSessionPort constructs the port
func NewSessionPort(db repokit.TxRunner) *SessionPort {
	if db == nil {
		panic("auth.SessionPort requires a non nil TxRunner")
	}
	return &SessionPort{db: db}
}

// Parse resolves the bearer token to a user id. Tenancy is unused here
func (p *SessionPort) Parse(r *http.Request) (string, string, error) {
	raw, err := httpkit.JWT(r)
	if err != nil {
		return "", "", err
	}

	const sql = `SELECT user_id::text FROM sessions WHERE token = $1 AND expires_at > now()`
	var uid string
	if err := p.db.QueryRow(r.Context(), sql, raw).Scan(&uid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", perr.Unauthorizedf("invalid bearer token")
		}
		return "", "", perr.FromPostgres(err, "session lookup failed")
	}
	return uid, "", nil
}
