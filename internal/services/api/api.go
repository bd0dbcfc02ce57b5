// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"fundi/internal/platform/config"
	"fundi/internal/platform/logger"
	phttp "fundi/internal/platform/net/http"
	"fundi/internal/platform/store"

	"fundi/internal/modkit"
	"fundi/internal/modkit/httpkit"
	"fundi/internal/modkit/module"
	"fundi/internal/modkit/scope"
	"fundi/internal/modkit/swaggerkit"

	"fundi/internal/services/api/auth"
	fundismod "fundi/internal/services/api/fundis/module"
	jobsmod "fundi/internal/services/api/jobs/module"
	metamod "fundi/internal/services/api/meta/module"
	paymentsmod "fundi/internal/services/api/payments/module"
	refdatahttp "fundi/internal/services/api/refdata/http"
	refdatarepo "fundi/internal/services/api/refdata/repo"
	refdatasvc "fundi/internal/services/api/refdata/service"
	statsrepo "fundi/internal/services/feedstats/repo"
	statssvc "fundi/internal/services/feedstats/service"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// feed analytics sink; a nil clickhouse seam disables recording
	var stats *statssvc.Service
	if opt.Store.CH != nil {
		stats = statssvc.New(statsrepo.NewCH(opt.Store.CH))
	}

	// session-backed bearer auth for the user-scoped endpoints
	sessions := auth.NewSessionPort(opt.Store.PG)

	mods := []module.Module{
		metamod.New(deps),
		fundismod.New(deps, modkit.WithPorts(fundismod.Ports{Stats: stats})),
		jobsmod.New(deps, modkit.WithPorts(jobsmod.Ports{Stats: stats, Auth: sessions})),
		paymentsmod.New(deps, modkit.WithPorts(paymentsmod.Ports{Auth: sessions})),
	}

	// reference lists live at the API root, so they register directly
	// instead of through a prefixed module
	refdata := refdatasvc.New(opt.Store.PG, refdatarepo.NewPG())

	// versioned API with a common middleware stack, plus the client tag
	// used by feed analytics
	mw := append(httpkit.CommonStack(), clientScope)
	httpkit.MountAPIV1(r, mw, func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		refdatahttp.Register(api, refdata)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}

// clientScope stashes the calling app's self-reported name in the request
// scope so analytics can segment by client
func clientScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app := r.Header.Get("X-Client-App"); app != "" {
			r = r.WithContext(scope.With(r.Context(), map[string]string{"client": app}))
		}
		next.ServeHTTP(w, r)
	})
}
