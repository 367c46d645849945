// Package api provides the HTTP API for the application
package api

import (
	"jubilee/internal/platform/config"
	"jubilee/internal/platform/logger"
	phttp "jubilee/internal/platform/net/http"

	"jubilee/internal/modkit"
	"jubilee/internal/modkit/httpkit"
	"jubilee/internal/modkit/module"
	"jubilee/internal/modkit/swaggerkit"

	annivmod "jubilee/internal/services/api/anniversary/module"
	metamod "jubilee/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: opt.Logger,
	}

	mods := []module.Module{
		metamod.New(deps),
		annivmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
