// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain"
	"github.com/Conte777/MediaGrab/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, telegram bot, kafka, metrics, workspaces, http)
		infrastructure.Module,

		// Domain (media download flows)
		domain.Module,
	)
}
