package workspace

import (
	"go.uber.org/fx"

	"github.com/Conte777/MediaGrab/config"
)

// Module provides the download workspace manager for fx DI
var Module = fx.Module("workspace",
	fx.Provide(func(cfg *config.DownloaderConfig) *Manager {
		return NewManager(cfg.TempDir)
	}),
)
