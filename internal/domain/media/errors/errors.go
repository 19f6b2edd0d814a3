// Package errors contains domain-specific errors for the media domain
package errors

import (
	pkgerrors "github.com/Conte777/MediaGrab/pkg/errors"
)

// Domain errors for media operations
var (
	ErrSessionNotFound        = pkgerrors.NewNotFoundError("no pending URL for user")
	ErrUnknownChoice          = pkgerrors.NewValidationError("unknown choice")
	ErrRemoteMediaUnavailable = pkgerrors.NewUnavailableError("remote media unavailable")
	ErrResolveFailed          = pkgerrors.NewUnavailableError("media resolution failed")
	ErrArtifactNotFound       = pkgerrors.NewInternalError("downloaded file not found")
	ErrArtifactTooLarge       = pkgerrors.NewValidationError("downloaded file is too large to send")
	ErrSendFailed             = pkgerrors.NewInternalError("failed to send media")
	ErrEmptyMessage           = pkgerrors.NewValidationError("message text cannot be empty")
)
