// Package module wires payments into the API using modkit
package module

import (
	"net/http"

	modkit "fundi/internal/modkit"
	"fundi/internal/modkit/httpkit"
	"fundi/internal/platform/net/middleware"
	str "fundi/internal/platform/strings"
	paymentshttp "fundi/internal/services/api/payments/http"
	paymentsrepo "fundi/internal/services/api/payments/repo"
	paymentssvc "fundi/internal/services/api/payments/service"
)

// Ports are cross-module dependencies the payments module accepts
type Ports struct {
	Auth middleware.AuthPort
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

	auth middleware.AuthPort
	svc  paymentssvc.Service
}

// New constructs a payments module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("payments"), modkit.WithPrefix("/payments")}, opts...)...)

	var auth middleware.AuthPort
	if p, ok := b.Ports.(Ports); ok {
		auth = p.Auth
	}

	repo := paymentsrepo.NewPG()
	svc := paymentssvc.New(deps.PG, repo)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		auth:      auth,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		httpkit.Protected(r, m.auth, func(pr httpkit.Router) {
			paymentshttp.Register(pr, m.svc)
		})
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
