// Package media contains the media domain module
package media

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Conte777/MediaGrab/config"
	telegramDelivery "github.com/Conte777/MediaGrab/internal/domain/media/delivery/telegram"
	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
	"github.com/Conte777/MediaGrab/internal/domain/media/repository/memory"
	"github.com/Conte777/MediaGrab/internal/domain/media/repository/saveig"
	"github.com/Conte777/MediaGrab/internal/domain/media/repository/ytdlp"
	"github.com/Conte777/MediaGrab/internal/domain/media/usecase/business"
	"github.com/Conte777/MediaGrab/internal/infrastructure/telegram"
	"github.com/Conte777/MediaGrab/internal/infrastructure/workspace"
)

// Module provides media domain components for fx dependency injection
var Module = fx.Module("media",
	// Repository
	fx.Provide(memory.NewSessionStore),
	fx.Provide(saveig.NewClient),
	fx.Provide(ytdlp.NewResolver),

	// UseCase
	fx.Provide(provideUseCase),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideTelegramHandlers),
	fx.Provide(telegramDelivery.NewRouter),

	// Wire cyclic dependency and register routes
	fx.Invoke(wireAndRegister),
)

// UseCaseParams groups UseCase dependencies
type UseCaseParams struct {
	fx.In

	Sessions   deps.SessionStore
	Fetcher    deps.MediaFetcher
	Resolver   deps.MediaResolver
	Workspaces *workspace.Manager
	Publisher  deps.EventPublisher
	Metrics    deps.MetricsRecorder
	Config     *config.DownloaderConfig
	Logger     zerolog.Logger
}

func provideUseCase(p UseCaseParams) *business.UseCase {
	return business.NewUseCase(
		p.Sessions,
		p.Fetcher,
		p.Resolver,
		p.Workspaces,
		p.Publisher,
		p.Metrics,
		p.Config,
		p.Logger.With().Str("component", "media_usecase").Logger(),
	)
}

// provideTelegramHandlers creates Telegram handlers with raw bot
func provideTelegramHandlers(uc *business.UseCase, bot *telegram.Bot, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, bot.Raw(), logger.With().Str("component", "telegram_handlers").Logger())
}

// wireAndRegister resolves cyclic dependency and registers routes
func wireAndRegister(
	lc fx.Lifecycle,
	uc *business.UseCase,
	handlers *telegramDelivery.Handlers,
	router *telegramDelivery.Router,
	bot *telegram.Bot,
	logger zerolog.Logger,
) {
	// Handlers implements deps.ChatSender interface
	// This resolves the cyclic dependency: UseCase -> ChatSender <- Handlers -> UseCase
	uc.SetSender(handlers)

	// Register Telegram routes
	router.RegisterRoutes(bot.Raw())

	// Command menu is cosmetic, a failure must not stop the bot
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := handlers.RegisterCommands(ctx); err != nil {
				logger.Warn().Err(err).Msg("Failed to register bot commands")
			}
			return nil
		},
	})
}
