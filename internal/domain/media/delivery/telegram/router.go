// Package telegram contains Telegram delivery layer
package telegram

import (
	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"

	"github.com/Conte777/MediaGrab/internal/domain/media/consts"
)

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		logger:   logger,
	}
}

// RegisterRoutes registers all update handlers on the bot
func (r *Router) RegisterRoutes(bot *tgbot.Bot) {
	// Commands
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+consts.CommandStart.Name, tgbot.MatchTypeExact, r.handlers.HandleStart)
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+consts.CommandHelp.Name, tgbot.MatchTypeExact, r.handlers.HandleHelp)

	// Links
	bot.RegisterHandlerMatchFunc(isPlainText, r.handlers.HandleText)

	// Format choices
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.ChoicePrefix, tgbot.MatchTypePrefix, r.handlers.HandleChoice)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}
