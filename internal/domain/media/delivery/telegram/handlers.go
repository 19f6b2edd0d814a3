// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/Conte777/MediaGrab/internal/domain/media/consts"
	"github.com/Conte777/MediaGrab/internal/domain/media/dto"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
	mediaerrors "github.com/Conte777/MediaGrab/internal/domain/media/errors"
	"github.com/Conte777/MediaGrab/internal/domain/media/usecase/business"
)

// Constants for Telegram API
const (
	RequestTimeout = 30 * time.Second
	UploadTimeout  = 10 * time.Minute // Local files can be up to 50MB
)

// Handlers contains Telegram update handlers
// Implements deps.ChatSender interface
type Handlers struct {
	uc     *business.UseCase
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(uc *business.UseCase, bot *tgbot.Bot, logger zerolog.Logger) *Handlers {
	return &Handlers{
		uc:     uc,
		bot:    bot,
		logger: logger,
	}
}

// SendText implements deps.ChatSender interface
func (h *Handlers) SendText(ctx context.Context, chatID int64, text string) error {
	if text == "" {
		h.logger.Warn().Int64("chat_id", chatID).Msg("Attempt to send empty message")
		return mediaerrors.ErrEmptyMessage
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return h.handleSendError(chatID, "message", err)
	}

	h.logSend(chatID, "message")
	return nil
}

// SendChoices implements deps.ChatSender interface
func (h *Handlers) SendChoices(ctx context.Context, chatID int64, prompt string, choices []entities.Choice) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        prompt,
		ReplyMarkup: buildKeyboard(choices),
	})
	if err != nil {
		return h.handleSendError(chatID, "choices", err)
	}

	h.logSend(chatID, "choices")
	return nil
}

// SendVideoURL implements deps.ChatSender interface
func (h *Handlers) SendVideoURL(ctx context.Context, chatID int64, mediaURL string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendVideo(msgCtx, &tgbot.SendVideoParams{
		ChatID: chatID,
		Video:  &models.InputFileString{Data: mediaURL},
	})
	if err != nil {
		return h.handleSendError(chatID, "video_url", err)
	}

	h.logSend(chatID, "video_url")
	return nil
}

// SendPhotoURL implements deps.ChatSender interface
func (h *Handlers) SendPhotoURL(ctx context.Context, chatID int64, mediaURL string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendPhoto(msgCtx, &tgbot.SendPhotoParams{
		ChatID: chatID,
		Photo:  &models.InputFileString{Data: mediaURL},
	})
	if err != nil {
		return h.handleSendError(chatID, "photo_url", err)
	}

	h.logSend(chatID, "photo_url")
	return nil
}

// SendVideoFile implements deps.ChatSender interface
func (h *Handlers) SendVideoFile(ctx context.Context, chatID int64, filename string, data io.Reader) error {
	msgCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := h.bot.SendVideo(msgCtx, &tgbot.SendVideoParams{
		ChatID:            chatID,
		Video:             &models.InputFileUpload{Filename: filename, Data: data},
		SupportsStreaming: true,
	})
	if err != nil {
		return h.handleSendError(chatID, "video_file", err)
	}

	h.logSend(chatID, "video_file")
	return nil
}

// SendAudioFile implements deps.ChatSender interface
func (h *Handlers) SendAudioFile(ctx context.Context, chatID int64, filename string, data io.Reader) error {
	msgCtx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err := h.bot.SendAudio(msgCtx, &tgbot.SendAudioParams{
		ChatID: chatID,
		Audio:  &models.InputFileUpload{Filename: filename, Data: data},
	})
	if err != nil {
		return h.handleSendError(chatID, "audio_file", err)
	}

	h.logSend(chatID, "audio_file")
	return nil
}

// SendChatAction implements deps.ChatSender interface
func (h *Handlers) SendChatAction(ctx context.Context, chatID int64, action string) error {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.SendChatAction(msgCtx, &tgbot.SendChatActionParams{
		ChatID: chatID,
		Action: models.ChatAction(action),
	})

	if err != nil {
		h.logger.Warn().Int64("chat_id", chatID).Str("action", action).Err(err).Msg("Failed to send chat action")
	}

	return err
}

// AnswerChoice implements deps.ChatSender interface
func (h *Handlers) AnswerChoice(ctx context.Context, choiceEventID string) error {
	if choiceEventID == "" {
		return nil
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.bot.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: choiceEventID,
	})
	return err
}

// RegisterCommands publishes the command menu shown by Telegram clients
func (h *Handlers) RegisterCommands(ctx context.Context) error {
	commands := make([]models.BotCommand, 0, len(consts.AllCommands))
	for _, c := range consts.AllCommands {
		commands = append(commands, models.BotCommand{Command: c.Name, Description: c.Description})
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	if _, err := h.bot.SetMyCommands(msgCtx, &tgbot.SetMyCommandsParams{Commands: commands}); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}

	h.logger.Info().Int("count", len(commands)).Msg("Bot command menu registered")
	return nil
}

// HandleStart handles /start command
func (h *Handlers) HandleStart(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	userID, chatID := messageSender(update.Message)

	h.logCommand(userID, "/start", "processing")

	req := &dto.StartCommandRequest{
		UserID: userID,
		ChatID: chatID,
	}
	if update.Message.From != nil {
		req.Username = update.Message.From.Username
	}

	resp, err := h.uc.HandleStart(ctx, req)
	if err != nil {
		h.logError(userID, "/start", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
	h.logCommand(userID, "/start", "success")
}

// HandleHelp handles /help command
func (h *Handlers) HandleHelp(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	userID, chatID := messageSender(update.Message)

	h.logCommand(userID, "/help", "processing")

	resp, err := h.uc.HandleHelp(ctx)
	if err != nil {
		h.logError(userID, "/help", err)
		return
	}

	h.sendResponse(ctx, chatID, resp.Message)
	h.logCommand(userID, "/help", "success")
}

// HandleText handles plain text messages carrying a link
func (h *Handlers) HandleText(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	userID, chatID := messageSender(update.Message)

	req := &dto.TextMessageRequest{
		UserID: userID,
		ChatID: chatID,
		Text:   update.Message.Text,
	}

	if err := h.uc.HandleTextMessage(ctx, req); err != nil {
		h.logError(userID, "text", err)
	}
}

// HandleChoice handles inline keyboard choices
func (h *Handlers) HandleChoice(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}

	req := &dto.ChoiceRequest{
		UserID:        query.From.ID,
		ChatID:        choiceChatID(query),
		ChoiceEventID: query.ID,
		ChoiceID:      query.Data,
	}

	h.logCommand(req.UserID, "choice", req.ChoiceID)

	if err := h.uc.HandleChoice(ctx, req); err != nil {
		h.logError(req.UserID, "choice", err)
	}
}

// buildKeyboard lays out one button per row
func buildKeyboard(choices []entities.Choice) *models.InlineKeyboardMarkup {
	rows := make([][]models.InlineKeyboardButton, 0, len(choices))
	for _, c := range choices {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: c.Label, CallbackData: c.ID},
		})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// choiceChatID returns the chat the keyboard was posted in.
// Private chats share their id with the user, so the user id is the fallback.
func choiceChatID(query *models.CallbackQuery) int64 {
	switch {
	case query.Message.Message != nil:
		return query.Message.Message.Chat.ID
	case query.Message.InaccessibleMessage != nil:
		return query.Message.InaccessibleMessage.Chat.ID
	default:
		return query.From.ID
	}
}

func messageSender(msg *models.Message) (userID, chatID int64) {
	chatID = msg.Chat.ID
	userID = chatID
	if msg.From != nil {
		userID = msg.From.ID
	}
	return userID, chatID
}

// isPlainText reports whether the update is a text message that is not a command
func isPlainText(update *models.Update) bool {
	if update.Message == nil || update.Message.Text == "" {
		return false
	}
	return !strings.HasPrefix(update.Message.Text, "/")
}

func (h *Handlers) sendResponse(ctx context.Context, chatID int64, text string) {
	if err := h.SendText(ctx, chatID, text); err != nil {
		h.logger.Error().Int64("chat_id", chatID).Err(err).Msg("Failed to send Telegram response")
	}
}

func (h *Handlers) handleSendError(chatID int64, kind string, err error) error {
	errorMsg := err.Error()

	switch {
	case strings.Contains(errorMsg, "Forbidden"):
		h.logger.Warn().Int64("chat_id", chatID).Str("kind", kind).Msg("User blocked the bot or chat not found")
		return fmt.Errorf("user blocked the bot or chat not found")

	case strings.Contains(errorMsg, "Too Many Requests"):
		h.logger.Warn().Int64("chat_id", chatID).Str("kind", kind).Msg("Rate limit exceeded")
		return fmt.Errorf("rate limit exceeded, please try again later")

	case strings.Contains(errorMsg, "Request Entity Too Large"):
		h.logger.Warn().Int64("chat_id", chatID).Str("kind", kind).Msg("Upload rejected as too large")
		return fmt.Errorf("file is too large for Telegram")

	default:
		h.logger.Error().Int64("chat_id", chatID).Str("kind", kind).Err(err).Msg("Unknown error while sending")
		return fmt.Errorf("failed to send %s: %w", kind, err)
	}
}

func (h *Handlers) logSend(chatID int64, kind string) {
	h.logger.Debug().Int64("chat_id", chatID).Str("kind", kind).Msg("Telegram send completed")
}

// logCommand logs processed updates
func (h *Handlers) logCommand(userID int64, command, result string) {
	h.logger.Info().Int64("user_id", userID).Str("command", command).Str("result", result).Msg("Telegram command processed")
}

// logError logs update errors
func (h *Handlers) logError(userID int64, command string, err error) {
	h.logger.Error().Int64("user_id", userID).Str("command", command).Err(err).Msg("Telegram command failed")
}
