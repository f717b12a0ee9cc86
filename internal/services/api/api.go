// Package api provides the HTTP API for the application
package api

import (
	"time"

	"paperwork/internal/platform/config"
	"paperwork/internal/platform/logger"
	phttp "paperwork/internal/platform/net/http"
	"paperwork/internal/platform/net/middleware"

	"paperwork/internal/modkit"
	"paperwork/internal/modkit/httpkit"
	"paperwork/internal/modkit/module"
	"paperwork/internal/modkit/swaggerkit"

	metamod "paperwork/internal/services/api/meta/module"
	pwdomain "paperwork/internal/services/api/paperwork/domain"
	pwmod "paperwork/internal/services/api/paperwork/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
	// CORSOrigins defaults to any origin when empty
	CORSOrigins []string
	// SlowRequest marks access log lines at warn level, 0 disables
	SlowRequest time.Duration
}

// OptionsFromConfig reads SWAGGER, PROFILER, CORS_ORIGINS and SLOW_MS from cfg
func OptionsFromConfig(cfg config.Conf, log *logger.Logger) Options {
	return Options{
		Config:         cfg,
		Logger:         log,
		EnableSwagger:  cfg.MayBool("SWAGGER", true),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		CORSOrigins:    cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
		SlowRequest:    time.Duration(cfg.MayInt("SLOW_MS", 500)) * time.Millisecond,
	}
}

// Mount mounts the API onto r. r must not have routes yet.
func Mount(r phttp.Router, opt Options) {
	// load balancer probe, ahead of every route
	r.Use(middleware.Heartbeat("/healthz"))

	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
	}

	// the paperwork module owns the service meta reports on
	paperwork := pwmod.New(deps)
	svc := module.MustPortsOf[pwdomain.ServicePort](paperwork)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Formats: svc})),
		paperwork,
	}

	stack := httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: opt.CORSOrigins,
		Slow:        opt.SlowRequest,
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	for _, m := range mods {
		module.Register(m.Name(), m.Ports())
	}

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})

	// unversioned routes share the versioned stack
	httpkit.MountGroup(r, stack, func(root httpkit.Router) {
		for _, m := range mods {
			if rm, ok := m.(modkit.RootMounter); ok {
				rm.MountRoot(root)
			}
		}
	})

	deps.Logger("api").Info().
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Strs("cors_origins", opt.CORSOrigins).
		Strs("modules", module.Names()).
		Msg("api mounted")
}
