// Package module wires jobs into the API using modkit
package module

import (
	"net/http"

	modkit "fundi/internal/modkit"
	"fundi/internal/modkit/httpkit"
	"fundi/internal/platform/net/middleware"
	str "fundi/internal/platform/strings"
	jobshttp "fundi/internal/services/api/jobs/http"
	jobsrepo "fundi/internal/services/api/jobs/repo"
	jobssvc "fundi/internal/services/api/jobs/service"
	statsdom "fundi/internal/services/feedstats/domain"
)

// Ports are cross-module dependencies the jobs module accepts
type Ports struct {
	Stats statsdom.RecorderPort
	Auth  middleware.AuthPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc jobssvc.Service
}

// New constructs a jobs module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("jobs"), modkit.WithPrefix("/jobs")}, opts...)...)

	var stats statsdom.RecorderPort
	var auth middleware.AuthPort
	if p, ok := b.Ports.(Ports); ok {
		stats = p.Stats
		auth = p.Auth
	}

	repo := jobsrepo.NewPG()
	svc := jobssvc.New(deps.PG, repo, stats)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		jobshttp.Register(r, m.svc, auth)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
