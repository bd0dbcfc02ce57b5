// Package module wires fundis into the API using modkit
package module

import (
	"net/http"

	modkit "fundi/internal/modkit"
	"fundi/internal/modkit/httpkit"
	str "fundi/internal/platform/strings"
	fundishttp "fundi/internal/services/api/fundis/http"
	fundisrepo "fundi/internal/services/api/fundis/repo"
	fundissvc "fundi/internal/services/api/fundis/service"
	statsdom "fundi/internal/services/feedstats/domain"
)

// Ports are cross-module dependencies the fundis module accepts
type Ports struct {
	Stats statsdom.RecorderPort
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

	svc fundissvc.Service
}

// New constructs a fundis module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("fundis"), modkit.WithPrefix("/fundis")}, opts...)...)

	var stats statsdom.RecorderPort
	if p, ok := b.Ports.(Ports); ok {
		stats = p.Stats
	}

	repo := fundisrepo.NewPG()
	svc := fundissvc.New(deps.PG, repo, stats)

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
		fundishttp.Register(r, m.svc)
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
