// Package infrastructure contains infrastructure layer components
package infrastructure

import (
	"go.uber.org/fx"

	"github.com/Conte777/MediaGrab/internal/infrastructure/http"
	"github.com/Conte777/MediaGrab/internal/infrastructure/kafka"
	"github.com/Conte777/MediaGrab/internal/infrastructure/logger"
	"github.com/Conte777/MediaGrab/internal/infrastructure/metrics"
	"github.com/Conte777/MediaGrab/internal/infrastructure/telegram"
	"github.com/Conte777/MediaGrab/internal/infrastructure/workspace"
)

// Module provides all infrastructure components for fx dependency injection
var Module = fx.Module("infrastructure",
	logger.Module,
	telegram.Module,
	kafka.Module,
	metrics.Module,
	workspace.Module,
	http.Module,
)
