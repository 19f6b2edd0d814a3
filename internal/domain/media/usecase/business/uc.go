// Package business contains business logic for the media domain
package business

import (
	"context"
	"errors"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain/media/consts"
	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
	"github.com/Conte777/MediaGrab/internal/domain/media/dto"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
	mediaerrors "github.com/Conte777/MediaGrab/internal/domain/media/errors"
	"github.com/Conte777/MediaGrab/internal/domain/media/platform"
	"github.com/Conte777/MediaGrab/internal/infrastructure/workspace"
)

const workspacePrefix = "mediagrab"

// UseCase dispatches chat events to the download flows
type UseCase struct {
	sessions   deps.SessionStore
	fetcher    deps.MediaFetcher
	resolver   deps.MediaResolver
	workspaces *workspace.Manager
	publisher  deps.EventPublisher
	metrics    deps.MetricsRecorder
	sender     deps.ChatSender
	maxUpload  int64
	logger     zerolog.Logger
	now        func() time.Time
}

// NewUseCase creates a new UseCase instance
// Note: sender is not passed here to break cyclic dependency
// Use SetSender after creating Telegram handlers
func NewUseCase(
	sessions deps.SessionStore,
	fetcher deps.MediaFetcher,
	resolver deps.MediaResolver,
	workspaces *workspace.Manager,
	publisher deps.EventPublisher,
	metrics deps.MetricsRecorder,
	cfg *config.DownloaderConfig,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		sessions:   sessions,
		fetcher:    fetcher,
		resolver:   resolver,
		workspaces: workspaces,
		publisher:  publisher,
		metrics:    metrics,
		maxUpload:  cfg.MaxUploadBytes,
		logger:     logger,
		now:        time.Now,
	}
}

// SetSender sets the ChatSender after construction
// This is called by fx.Invoke to resolve cyclic dependency
func (uc *UseCase) SetSender(sender deps.ChatSender) {
	uc.sender = sender
}

// HandleStart handles /start command
func (uc *UseCase) HandleStart(ctx context.Context, req *dto.StartCommandRequest) (*dto.CommandResponse, error) {
	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("username", req.Username).
		Msg("User started bot")

	return &dto.CommandResponse{Message: consts.MsgStart}, nil
}

// HandleHelp handles /help command
func (uc *UseCase) HandleHelp(ctx context.Context) (*dto.CommandResponse, error) {
	return &dto.CommandResponse{Message: consts.MsgHelp}, nil
}

// HandleTextMessage classifies a submitted link and starts the matching flow.
// The returned error is only about delivering the reply itself.
func (uc *UseCase) HandleTextMessage(ctx context.Context, req *dto.TextMessageRequest) error {
	if uc.sender == nil {
		uc.logger.Error().Msg("ChatSender is not set")
		return mediaerrors.ErrSendFailed
	}

	link := strings.TrimSpace(req.Text)
	p := platform.Classify(link)
	uc.metrics.RecordLink(p)

	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("platform", string(p)).
		Msg("Received link")

	switch p {
	case entities.PlatformYouTube:
		uc.sessions.Set(req.UserID, link)
		return uc.sender.SendChoices(ctx, req.ChatID, consts.MsgChooseFormat, consts.FormatChoices)

	case entities.PlatformInstagram:
		started := uc.now()
		uc.chatAction(ctx, req.ChatID, consts.ActionUploadPhoto)
		err := uc.fetchRemoteMedia(ctx, req.ChatID, link)
		return uc.finish(ctx, req.UserID, req.ChatID, p, "", started, err)

	default:
		return uc.sender.SendText(ctx, req.ChatID, consts.MsgUnrecognizedLink)
	}
}

// HandleChoice handles a format choice for the pending link of the user.
// The choice event is acknowledged before any other work.
func (uc *UseCase) HandleChoice(ctx context.Context, req *dto.ChoiceRequest) error {
	if uc.sender == nil {
		uc.logger.Error().Msg("ChatSender is not set")
		return mediaerrors.ErrSendFailed
	}

	if err := uc.sender.AnswerChoice(ctx, req.ChoiceEventID); err != nil {
		uc.logger.Warn().Err(err).Int64("user_id", req.UserID).Msg("Failed to acknowledge choice")
	}

	mode, ok := consts.ModeForChoice(req.ChoiceID)
	if !ok {
		return uc.replyFailure(ctx, req.ChatID, fmt.Errorf("%w: %q", mediaerrors.ErrUnknownChoice, req.ChoiceID))
	}

	link, ok := uc.sessions.Take(req.UserID)
	if !ok {
		return uc.replyFailure(ctx, req.ChatID, mediaerrors.ErrSessionNotFound)
	}

	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("mode", string(mode)).
		Msg("Resolving media")

	started := uc.now()
	if mode == entities.ModeAudio {
		uc.chatAction(ctx, req.ChatID, consts.ActionUploadDocument)
	} else {
		uc.chatAction(ctx, req.ChatID, consts.ActionUploadVideo)
	}

	err := uc.resolveMedia(ctx, req.ChatID, link, mode)
	return uc.finish(ctx, req.UserID, req.ChatID, entities.PlatformYouTube, mode, started, err)
}

// fetchRemoteMedia forwards the first media of a post by reference
func (uc *UseCase) fetchRemoteMedia(ctx context.Context, chatID int64, link string) error {
	medias, err := uc.fetcher.Fetch(ctx, link)
	if err != nil {
		if !errors.Is(err, mediaerrors.ErrRemoteMediaUnavailable) {
			err = fmt.Errorf("%w: %v", mediaerrors.ErrRemoteMediaUnavailable, err)
		}
		return err
	}

	if len(medias) == 0 {
		return mediaerrors.ErrRemoteMediaUnavailable
	}

	// Carousel posts return several items; only the first is sent.
	media := medias[0]

	if media.Kind == entities.MediaKindVideo {
		err = uc.sender.SendVideoURL(ctx, chatID, media.URL)
	} else {
		err = uc.sender.SendPhotoURL(ctx, chatID, media.URL)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", mediaerrors.ErrSendFailed, err)
	}

	return nil
}

// resolveMedia downloads the link into a scoped workspace and uploads the result.
// The workspace is released on every return path.
func (uc *UseCase) resolveMedia(ctx context.Context, chatID int64, link string, mode entities.Mode) error {
	ws, err := uc.workspaces.Acquire(workspacePrefix)
	if err != nil {
		return err
	}
	defer func() {
		if err := ws.Release(); err != nil {
			uc.logger.Error().Err(err).Str("dir", ws.Dir()).Msg("Failed to release workspace")
		}
	}()

	artifact, err := uc.resolver.Resolve(ctx, entities.ResolveRequest{
		URL:       link,
		Mode:      mode,
		OutputDir: ws.Dir(),
	})
	if err != nil {
		return err
	}

	if uc.maxUpload > 0 && artifact.Size > uc.maxUpload {
		return fmt.Errorf("%w: %d MiB, limit is %d MiB",
			mediaerrors.ErrArtifactTooLarge, artifact.Size>>20, uc.maxUpload>>20)
	}

	f, err := os.Open(artifact.Path)
	if err != nil {
		return fmt.Errorf("%w: %v", mediaerrors.ErrArtifactNotFound, err)
	}
	defer f.Close()

	if mode == entities.ModeAudio {
		err = uc.sender.SendAudioFile(ctx, chatID, artifact.Filename(), f)
	} else {
		err = uc.sender.SendVideoFile(ctx, chatID, artifact.Filename(), f)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", mediaerrors.ErrSendFailed, err)
	}

	return nil
}

// finish records the flow outcome and turns a failure into the single reply
func (uc *UseCase) finish(
	ctx context.Context,
	userID, chatID int64,
	p entities.Platform,
	mode entities.Mode,
	started time.Time,
	flowErr error,
) error {
	elapsed := uc.now().Sub(started)

	status := entities.DownloadStatusSuccess
	if flowErr != nil {
		status = entities.DownloadStatusFailure
	}
	uc.metrics.RecordDownload(p, mode, status, elapsed.Seconds())

	// Reply first, publish after
	var replyErr error
	if flowErr == nil {
		uc.logger.Info().
			Int64("user_id", userID).
			Str("platform", string(p)).
			Str("mode", string(mode)).
			Dur("took", elapsed).
			Msg("Media delivered")
	} else {
		replyErr = uc.replyFailure(ctx, chatID, flowErr)
	}

	event := &entities.DownloadEvent{
		ID:         uuid.NewString(),
		UserID:     userID,
		ChatID:     chatID,
		Platform:   p,
		Mode:       mode,
		Status:     status,
		DurationMs: elapsed.Milliseconds(),
		OccurredAt: uc.now().UTC(),
	}
	if flowErr != nil {
		event.Error = flowErr.Error()
	}
	if err := uc.publisher.PublishDownload(ctx, event); err != nil {
		uc.logger.Warn().Err(err).Str("event_id", event.ID).Msg("Failed to publish download event")
	}

	return replyErr
}

// replyFailure is the only place where a flow error becomes user text
func (uc *UseCase) replyFailure(ctx context.Context, chatID int64, err error) error {
	uc.logger.Warn().
		Err(err).
		Int64("chat_id", chatID).
		Msg("Flow failed")

	return uc.sender.SendText(ctx, chatID, failureReply(err))
}

func failureReply(err error) string {
	switch {
	case errors.Is(err, mediaerrors.ErrSessionNotFound):
		return consts.MsgNoURL
	case errors.Is(err, mediaerrors.ErrRemoteMediaUnavailable):
		return consts.MsgCouldNotFetch
	case errors.Is(err, mediaerrors.ErrUnknownChoice):
		return consts.MsgUnknownChoice
	default:
		// Replies are sent as HTML and the detail may carry raw tool output
		return consts.MsgErrorPrefix + html.EscapeString(err.Error())
	}
}

func (uc *UseCase) chatAction(ctx context.Context, chatID int64, action string) {
	if err := uc.sender.SendChatAction(ctx, chatID, action); err != nil {
		uc.logger.Debug().Err(err).Str("action", action).Msg("Chat action not delivered")
	}
}
