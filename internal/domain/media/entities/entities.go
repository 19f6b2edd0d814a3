// Package entities contains domain entities
package entities

import (
	"path/filepath"
	"time"
)

// Platform is the media source a submitted link belongs to
type Platform string

const (
	PlatformYouTube      Platform = "youtube"
	PlatformInstagram    Platform = "instagram"
	PlatformUnrecognized Platform = "unrecognized"
)

// Mode is the requested download shape for video platform links
type Mode string

const (
	ModeVideo Mode = "video"
	ModeAudio Mode = "audio"
)

// MediaKind is the declared kind of a media asset
type MediaKind string

const (
	MediaKindVideo MediaKind = "video"
	MediaKindAudio MediaKind = "audio"
	MediaKindPhoto MediaKind = "photo"
)

// RemoteMedia is a media descriptor returned by the metadata service.
// It is forwarded to the chat by reference, never downloaded locally.
type RemoteMedia struct {
	URL  string    `json:"url"`
	Kind MediaKind `json:"type"`
}

// ResolveRequest describes one media resolver invocation
type ResolveRequest struct {
	URL       string
	Mode      Mode
	OutputDir string
}

// Artifact is a local file produced by the media resolver
type Artifact struct {
	Path string
	Kind MediaKind
	Size int64
}

// Filename returns the base name of the artifact
func (a *Artifact) Filename() string {
	return filepath.Base(a.Path)
}

// Choice is a labeled option presented to the user
type Choice struct {
	ID    string
	Label string
}

// DownloadStatus is the outcome of a download flow
type DownloadStatus string

const (
	DownloadStatusSuccess DownloadStatus = "success"
	DownloadStatusFailure DownloadStatus = "failure"
)

// DownloadEvent is published after every download flow
type DownloadEvent struct {
	ID         string         `json:"id"`
	UserID     int64          `json:"user_id"`
	ChatID     int64          `json:"chat_id"`
	Platform   Platform       `json:"platform"`
	Mode       Mode           `json:"mode,omitempty"`
	Status     DownloadStatus `json:"status"`
	Error      string         `json:"error,omitempty"`
	DurationMs int64          `json:"duration_ms"`
	OccurredAt time.Time      `json:"occurred_at"`
}
