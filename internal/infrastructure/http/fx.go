package http

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/MediaGrab/config"
	healthDelivery "github.com/Conte777/MediaGrab/internal/delivery/http"
	"github.com/Conte777/MediaGrab/internal/infrastructure/http/server"
)

// Module provides HTTP server for fx DI
var Module = fx.Module("http",
	fx.Provide(NewServerFx),
	fx.Invoke(func(*server.Server) {}),
)

// NewServerFx creates HTTP server with lifecycle hooks for fx DI
func NewServerFx(
	lc fx.Lifecycle,
	serviceCfg *config.ServiceConfig,
	logger zerolog.Logger,
) *server.Server {
	log := logger.With().Str("component", "http").Logger()
	srv := server.NewServer(serviceCfg.Name, serviceCfg.Port, log)

	// Register Prometheus metrics endpoint
	srv.RegisterMetrics()

	// Register liveness endpoint
	healthDelivery.NewHandler(serviceCfg.Name).Register(srv.Router)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	return srv
}
