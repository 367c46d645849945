// Package module wires anniversary analysis into the API using modkit
package module

import (
	"net/http"

	modkit "jubilee/internal/modkit"
	"jubilee/internal/modkit/httpkit"
	str "jubilee/internal/platform/strings"
	annivhttp "jubilee/internal/services/api/anniversary/http"
	annivsvc "jubilee/internal/services/api/anniversary/service"
)

const defaultMaxUploadBytes = 8 << 20

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws      []func(http.Handler) http.Handler
	ports    any
	register func(httpkit.Router)

	svc annivsvc.Service
}

// New constructs an anniversary module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("anniversary"),
		modkit.WithPrefix("/anniversary"),
	}, opts...)...)

	svc := annivsvc.New(deps)
	cfg := annivhttp.Config{
		MaxUploadBytes: deps.Cfg.Prefix("ANNIV_").MayInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
	}
	m.ports = adaptAnniversaryPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		annivhttp.Register(r, m.svc, cfg)
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
