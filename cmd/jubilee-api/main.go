// @title         Jubilee API
// @version       0.1.0
// @description   Work-anniversary roster analysis endpoints

package main

import (
	"context"

	"jubilee/internal/platform/config"
	"jubilee/internal/platform/logger"
	phttp "jubilee/internal/platform/net/http"

	"jubilee/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early (LOG_*)
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Logger:         *l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
