// Package http provides http transport for payments
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"fundi/internal/modkit/httpkit"
	"fundi/internal/services/api/payments/domain"
	svc "fundi/internal/services/api/payments/service"
	"fundi/internal/services/api/wire"
)

// Register mounts payments endpoints on the given router.
// Callers must wrap the router with auth middleware; handlers read the
// user id from the request context
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// pagination is the payments envelope's pagination block, snake_case
// like the fundis endpoints it predates jobs
type pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// listResponse is the legacy list envelope for payments
type listResponse struct {
	Success    bool             `json:"success"`
	Payments   []domain.Payment `json:"payments"`
	Pagination pagination       `json:"pagination"`
}

// swagger:route GET /payments Payments paymentsList
// @Summary List the authenticated user's payments
// @Tags Payments
// @Produce json
// @Param status query string false "Payment status filter"
// @Param method query string false "Payment method filter"
// @Param job_id query string false "Scope to one job"
// @Param page query integer false "Page number (1-based)"
// @Param per_page query integer false "Page size (default 15)"
// @Success 200 {object} listResponse "ok"
// @Security BearerAuth
// @Router /payments [get]
func (h *handlers) list(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	uid, err := httpkit.User(r)
	if err != nil {
		wire.Fail(w, err)
		return
	}

	f := domain.Filters{
		Status: httpkit.QueryStr(r, "status", ""),
		Method: httpkit.QueryStr(r, "method", ""),
		JobID:  httpkit.QueryStr(r, "job_id", ""),
	}
	page := httpkit.QueryInt(r, "page", 1)
	perPage := httpkit.QueryInt(r, "per_page", svc.DefaultPerPage)

	rows, meta, err := h.svc.List(r.Context(), uid, f, page, perPage)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	if rows == nil {
		rows = []domain.Payment{}
	}
	wire.OK(w, listResponse{
		Success:  true,
		Payments: rows,
		Pagination: pagination{
			CurrentPage: meta.CurrentPage,
			LastPage:    meta.LastPage,
			PerPage:     meta.PerPage,
			Total:       meta.Total,
		},
	})
}

// itemResponse is the legacy detail envelope for payments
type itemResponse struct {
	Success bool           `json:"success"`
	Payment domain.Payment `json:"payment"`
}

// swagger:route GET /payments/{id} Payments paymentsGet
// @Summary Fetch one of the authenticated user's payments
// @Tags Payments
// @Produce json
// @Param id path string true "Payment id"
// @Success 200 {object} itemResponse "ok"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *handlers) get(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	uid, err := httpkit.User(r)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	p, err := h.svc.Get(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		wire.Fail(w, err)
		return
	}
	wire.OK(w, itemResponse{Success: true, Payment: p})
}
