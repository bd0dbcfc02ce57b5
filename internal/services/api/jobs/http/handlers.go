// Package http provides http transport for jobs
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"fundi/internal/modkit/httpkit"
	"fundi/internal/platform/net/http/bind"
	"fundi/internal/platform/net/middleware"
	"fundi/internal/services/api/jobs/domain"
	svc "fundi/internal/services/api/jobs/service"
	"fundi/internal/services/api/wire"
)

// Register mounts jobs endpoints on the given router. Listing is public;
// posting a job requires a bearer token
func Register(r httpkit.Router, s svc.Service, auth middleware.AuthPort) {
	h := &handlers{svc: s}
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	httpkit.Protected(r, auth, func(pr httpkit.Router) {
		pr.Post("/", h.create)
	})
}

type handlers struct{ svc svc.Service }

// pagination is the jobs envelope's pagination block. These endpoints
// were added later than fundis and speak camelCase, with an explicit
// hasNextPage flag
type pagination struct {
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	PerPage     int  `json:"perPage"`
	TotalItems  int  `json:"totalItems"`
	HasNextPage bool `json:"hasNextPage"`
}

// listResponse is the legacy list envelope for jobs
type listResponse struct {
	Success    bool         `json:"success"`
	Jobs       []domain.Job `json:"jobs"`
	Pagination pagination   `json:"pagination"`
}

// itemResponse is the legacy detail envelope for jobs
type itemResponse struct {
	Success bool       `json:"success"`
	Job     domain.Job `json:"job"`
}

// swagger:route GET /jobs Jobs jobsList
// @Summary List jobs with filters and pagination
// @Tags Jobs
// @Produce json
// @Param search query string false "Free-text search"
// @Param category query string false "Category filter"
// @Param location query string false "Location filter"
// @Param status query string false "Job status filter"
// @Param min_budget query integer false "Minimum budget"
// @Param max_budget query integer false "Maximum budget"
// @Param page query integer false "Page number (1-based)"
// @Param per_page query integer false "Page size (default 15)"
// @Success 200 {object} listResponse "ok"
// @Router /jobs [get]
func (h *handlers) list(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	f := domain.Filters{
		Search:    httpkit.QueryStr(r, "search", ""),
		Category:  httpkit.QueryStr(r, "category", ""),
		Location:  httpkit.QueryStr(r, "location", ""),
		Status:    httpkit.QueryStr(r, "status", ""),
		MinBudget: httpkit.QueryInt64(r, "min_budget", 0),
		MaxBudget: httpkit.QueryInt64(r, "max_budget", 0),
		SortKey:   httpkit.QueryStr(r, "sort", ""),
		SortDesc:  httpkit.QueryStr(r, "order", "desc") == "desc",
	}
	page := httpkit.QueryInt(r, "page", 1)
	perPage := httpkit.QueryInt(r, "per_page", svc.DefaultPerPage)

	rows, meta, err := h.svc.List(r.Context(), f, page, perPage)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	if rows == nil {
		rows = []domain.Job{}
	}
	wire.OK(w, listResponse{
		Success: true,
		Jobs:    rows,
		Pagination: pagination{
			CurrentPage: meta.CurrentPage,
			LastPage:    meta.LastPage,
			PerPage:     meta.PerPage,
			TotalItems:  meta.Total,
			HasNextPage: meta.CurrentPage < meta.LastPage,
		},
	})
}

// swagger:route GET /jobs/{id} Jobs jobsGet
// @Summary Fetch one job by id
// @Tags Jobs
// @Produce json
// @Param id path string true "Job id"
// @Success 200 {object} itemResponse "ok"
// @Router /jobs/{id} [get]
func (h *handlers) get(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	id := chi.URLParam(r, "id")
	j, err := h.svc.Get(r.Context(), id)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	wire.OK(w, itemResponse{Success: true, Job: j})
}

// swagger:route POST /jobs Jobs jobsCreate
// @Summary Post a new job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param body body domain.CreateJob true "Job payload"
// @Success 200 {object} itemResponse "ok"
// @Security BearerAuth
// @Router /jobs [post]
func (h *handlers) create(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	uid, err := httpkit.User(r)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	in, err := bind.ParseJSON[domain.CreateJob](r)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	j, err := h.svc.Create(r.Context(), uid, in)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	wire.OK(w, itemResponse{Success: true, Job: j})
}
