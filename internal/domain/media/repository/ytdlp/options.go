package ytdlp

import (
	"path/filepath"
	"strings"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
)

const outputTemplate = "%(title)s.%(ext)s"

// buildArgs returns the yt-dlp argument list for one request.
// The URL is always the last argument.
func buildArgs(cfg *config.DownloaderConfig, req entities.ResolveRequest) []string {
	args := []string{
		"--no-playlist",
		"--playlist-items", "1",
		"--no-progress",
		"--no-simulate",
		"--print", "filename",
		"-o", filepath.Join(req.OutputDir, outputTemplate),
	}

	if cfg.FFmpegPath != "" {
		args = append(args, "--ffmpeg-location", cfg.FFmpegPath)
	}

	switch req.Mode {
	case entities.ModeAudio:
		args = append(args,
			"-f", cfg.AudioFormat,
			"-x",
			"--audio-format", cfg.AudioCodec,
			"--audio-quality", cfg.AudioQuality,
		)
	default:
		args = append(args,
			"-f", cfg.VideoFormat,
			"--merge-output-format", cfg.MergeFormat,
		)
	}

	return append(args, "--", req.URL)
}

// candidatePaths lists where the artifact may be, most likely first.
// yt-dlp reports the name before post-processing, so audio extraction
// always needs the codec extension substituted.
func candidatePaths(cfg *config.DownloaderConfig, reported string, mode entities.Mode) []string {
	if mode == entities.ModeAudio {
		return []string{replaceExt(reported, cfg.AudioCodec)}
	}

	merged := replaceExt(reported, cfg.MergeFormat)
	if merged == reported {
		return []string{reported}
	}
	return []string{reported, merged}
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}

func kindForMode(mode entities.Mode) entities.MediaKind {
	if mode == entities.ModeAudio {
		return entities.MediaKindAudio
	}
	return entities.MediaKindVideo
}

// lastLine returns the last non-empty line of command output
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
