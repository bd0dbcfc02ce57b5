// Package http provides http transport for reference data
package http

import (
	"context"
	stdhttp "net/http"

	"fundi/internal/modkit/httpkit"
	svc "fundi/internal/services/api/refdata/service"
	"fundi/internal/services/api/wire"
)

// Register mounts the reference endpoints. These live at the API root
// because the mobile clients fetch them before any listing screen
func Register(r httpkit.Router, s svc.Service) {
	r.Get("/categories", values(s.Categories))
	r.Get("/skills", values(s.Skills))
	r.Get("/locations", values(s.Locations))
}

// swagger:route GET /categories Refdata refdataCategories
// @Summary List categories, skills, or locations
// @Tags Refdata
// @Produce json
// @Success 200 {object} wire.Values "ok"
// @Router /categories [get]
func values(fetch func(context.Context) ([]string, error)) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		xs, err := fetch(r.Context())
		if err != nil {
			wire.Fail(w, err)
			return
		}
		if xs == nil {
			xs = []string{}
		}
		wire.OK(w, wire.Values{Success: true, Values: xs})
	}
}
