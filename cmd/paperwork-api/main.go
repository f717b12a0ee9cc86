// @title         Paperwork API
// @version       0.1.0
// @description   Reduces driver trip exports to one paperwork summary per driver

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"paperwork/internal/platform/config"
	"paperwork/internal/platform/logger"
	phttp "paperwork/internal/platform/net/http"

	"paperwork/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	apiCfg := config.New().Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// http server (reads CORE_API_API_PORT, READ_TIMEOUT, SHUTDOWN_TIMEOUT)
	srv := phttp.NewServer(apiCfg)

	api.Mount(srv.Router(), api.OptionsFromConfig(apiCfg, l))

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
