// Package module wires the paperwork upload endpoint into the API using modkit
package module

import (
	"net/http"

	"paperwork/internal/adapters/sheet"
	modkit "paperwork/internal/modkit"
	"paperwork/internal/modkit/httpkit"
	"paperwork/internal/platform/net/middleware"
	str "paperwork/internal/platform/strings"

	pwhttp "paperwork/internal/services/api/paperwork/http"
	pwsvc "paperwork/internal/services/api/paperwork/service"
)

// DefaultMaxUploadBytes bounds an upload when MAX_UPLOAD_BYTES is unset
const DefaultMaxUploadBytes int64 = 32 << 20

// Module implements the paperwork module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
	root     func(httpkit.Router)

	svc   pwsvc.Service
	ports Ports
}

// New constructs the paperwork module. MAX_UPLOAD_BYTES and DEFAULT_FORMAT are read from deps.Cfg.
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("paperwork"),
		modkit.WithPrefix("/paperwork"),
	}, opts...)...)

	maxBytes := deps.Cfg.MayBytes("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	format := sheet.Format(deps.Cfg.MayEnum("DEFAULT_FORMAT", string(sheet.FormatXLSX), formatNames()...))
	svc := pwsvc.New()
	hd := pwhttp.Deps{Svc: svc, DefaultFormat: format}

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		// the body limit runs ahead of any caller supplied middleware
		mws:   append([]func(http.Handler) http.Handler{middleware.MaxBody(maxBytes)}, b.Mw...),
		svc:   svc,
		ports: Ports{Service: svc},
	}

	external, externalRoot := b.Register, b.Root
	m.register = func(r httpkit.Router) {
		pwhttp.Register(r, hd)
		external(r)
	}
	m.root = func(r httpkit.Router) {
		pwhttp.RegisterLegacy(r, hd)
		externalRoot(r)
	}

	deps.Logger("paperwork").Debug().
		Int64("max_upload_bytes", maxBytes).
		Str("default_format", string(format)).
		Msg("paperwork module built")
	return m
}

func formatNames() []string {
	fs := sheet.Formats()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = string(f)
	}
	return out
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, str.MustPrefix(m.prefix), m.mws, m.register)
}

// MountRoot mounts the legacy unversioned route
func (m *Module) MountRoot(r httpkit.Router) {
	httpkit.MountGroup(r, m.mws, m.root)
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
