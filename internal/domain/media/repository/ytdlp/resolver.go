// Package ytdlp resolves video platform links with the yt-dlp executable
package ytdlp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
	mediaerrors "github.com/Conte777/MediaGrab/internal/domain/media/errors"
)

// Resolver runs yt-dlp as a child process
type Resolver struct {
	cfg    *config.DownloaderConfig
	logger zerolog.Logger
}

// NewResolver creates a new yt-dlp backed MediaResolver
func NewResolver(cfg *config.DownloaderConfig, logger zerolog.Logger) deps.MediaResolver {
	return &Resolver{
		cfg:    cfg,
		logger: logger.With().Str("component", "ytdlp_resolver").Logger(),
	}
}

// Resolve downloads the media into req.OutputDir and returns the produced file
func (r *Resolver) Resolve(ctx context.Context, req entities.ResolveRequest) (*entities.Artifact, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	args := buildArgs(r.cfg, req)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(runCtx, r.cfg.YtDlpPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Info().
		Str("url", req.URL).
		Str("mode", string(req.Mode)).
		Msg("Starting yt-dlp")

	started := time.Now()
	if err := cmd.Run(); err != nil {
		detail := lastLine(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		if runCtx.Err() == context.DeadlineExceeded {
			detail = fmt.Sprintf("timed out after %s", r.cfg.Timeout)
		}

		r.logger.Warn().
			Err(err).
			Str("url", req.URL).
			Str("stderr", detail).
			Msg("yt-dlp failed")

		return nil, fmt.Errorf("%w: %s", mediaerrors.ErrResolveFailed, detail)
	}

	reported := lastLine(stdout.String())
	if reported == "" {
		return nil, fmt.Errorf("%w: yt-dlp reported no output file", mediaerrors.ErrArtifactNotFound)
	}

	for _, path := range candidatePaths(r.cfg, reported, req.Mode) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}

		r.logger.Info().
			Str("path", path).
			Int64("size_bytes", info.Size()).
			Dur("took", time.Since(started)).
			Msg("yt-dlp finished")

		return &entities.Artifact{
			Path: path,
			Kind: kindForMode(req.Mode),
			Size: info.Size(),
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", mediaerrors.ErrArtifactNotFound, reported)
}
