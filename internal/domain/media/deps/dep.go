// Package deps contains interface definitions for the media domain dependencies
package deps

import (
	"context"
	"io"

	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
)

// ChatSender defines interface for replying to the user via the chat transport.
// It is implemented by the Telegram handlers and injected with SetSender
// to break the cyclic dependency between UseCase and Handlers.
type ChatSender interface {
	// SendText sends a plain text reply
	SendText(ctx context.Context, chatID int64, text string) error

	// SendChoices sends a prompt with one button per choice
	SendChoices(ctx context.Context, chatID int64, prompt string, choices []entities.Choice) error

	// SendVideoURL sends a video attachment by reference to a remote URL
	SendVideoURL(ctx context.Context, chatID int64, mediaURL string) error

	// SendPhotoURL sends a photo attachment by reference to a remote URL
	SendPhotoURL(ctx context.Context, chatID int64, mediaURL string) error

	// SendVideoFile uploads a local video
	SendVideoFile(ctx context.Context, chatID int64, filename string, data io.Reader) error

	// SendAudioFile uploads a local audio file
	SendAudioFile(ctx context.Context, chatID int64, filename string, data io.Reader) error

	// SendChatAction shows a progress indicator such as upload_video
	SendChatAction(ctx context.Context, chatID int64, action string) error

	// AnswerChoice acknowledges a choice event
	AnswerChoice(ctx context.Context, choiceEventID string) error
}

// SessionStore keeps the pending URL per user between link and choice
type SessionStore interface {
	// Set stores or overwrites the pending URL
	Set(userID int64, url string)

	// Get returns the pending URL without removing it
	Get(userID int64) (string, bool)

	// Take returns the pending URL and clears it in one step
	Take(userID int64) (string, bool)
}

// MediaFetcher looks up directly hosted media for a social post URL
type MediaFetcher interface {
	Fetch(ctx context.Context, postURL string) ([]entities.RemoteMedia, error)
}

// MediaResolver downloads (and transcodes) media to a local artifact
type MediaResolver interface {
	Resolve(ctx context.Context, req entities.ResolveRequest) (*entities.Artifact, error)
}

// EventPublisher publishes download events
type EventPublisher interface {
	PublishDownload(ctx context.Context, event *entities.DownloadEvent) error
	Close() error
}

// MetricsRecorder records flow metrics
type MetricsRecorder interface {
	RecordLink(platform entities.Platform)
	RecordDownload(platform entities.Platform, mode entities.Mode, status entities.DownloadStatus, seconds float64)
}
