// Package http provides http transport for fundis
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"fundi/internal/modkit/httpkit"
	"fundi/internal/services/api/fundis/domain"
	svc "fundi/internal/services/api/fundis/service"
	"fundi/internal/services/api/wire"
)

// Register mounts fundis endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type handlers struct{ svc svc.Service }

// pagination is the fundis envelope's pagination block. These endpoints
// are the oldest in the backend and speak snake_case
type pagination struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// listResponse is the legacy list envelope for fundis
type listResponse struct {
	Success    bool           `json:"success"`
	Fundis     []domain.Fundi `json:"fundis"`
	Pagination pagination     `json:"pagination"`
}

// itemResponse is the legacy detail envelope for fundis
type itemResponse struct {
	Success bool         `json:"success"`
	Fundi   domain.Fundi `json:"fundi"`
}

// swagger:route GET /fundis Fundis fundisList
// @Summary List fundis with filters and pagination
// @Tags Fundis
// @Produce json
// @Param search query string false "Free-text search"
// @Param location query string false "Location filter"
// @Param category query string false "Category filter"
// @Param skills query string false "Comma-separated skills"
// @Param min_rating query number false "Minimum rating"
// @Param verified query boolean false "Verified fundis only"
// @Param page query integer false "Page number (1-based)"
// @Param per_page query integer false "Page size (default 15)"
// @Success 200 {object} listResponse "ok"
// @Router /fundis [get]
func (h *handlers) list(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	f := domain.Filters{
		Search:       httpkit.QueryStr(r, "search", ""),
		Location:     httpkit.QueryStr(r, "location", ""),
		Category:     httpkit.QueryStr(r, "category", ""),
		Skills:       httpkit.QueryCSV(r, "skills"),
		MinRating:    httpkit.QueryFloat(r, "min_rating", 0),
		VerifiedOnly: httpkit.QueryBool(r, "verified", false),
		SortKey:      httpkit.QueryStr(r, "sort", ""),
		SortDesc:     httpkit.QueryStr(r, "order", "desc") == "desc",
	}
	page := httpkit.QueryInt(r, "page", 1)
	perPage := httpkit.QueryInt(r, "per_page", svc.DefaultPerPage)

	rows, meta, err := h.svc.List(r.Context(), f, page, perPage)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	if rows == nil {
		rows = []domain.Fundi{}
	}
	wire.OK(w, listResponse{
		Success: true,
		Fundis:  rows,
		Pagination: pagination{
			CurrentPage: meta.CurrentPage,
			LastPage:    meta.LastPage,
			PerPage:     meta.PerPage,
			Total:       meta.Total,
		},
	})
}

// swagger:route GET /fundis/{id} Fundis fundisGet
// @Summary Fetch one fundi by id
// @Tags Fundis
// @Produce json
// @Param id path string true "Fundi id"
// @Success 200 {object} itemResponse "ok"
// @Router /fundis/{id} [get]
func (h *handlers) get(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	id := chi.URLParam(r, "id")
	fd, err := h.svc.Get(r.Context(), id)
	if err != nil {
		wire.Fail(w, err)
		return
	}
	wire.OK(w, itemResponse{Success: true, Fundi: fd})
}
