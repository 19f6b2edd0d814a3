package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/infrastructure/workspace"
)

// checker runs external checks so tests can replace them
type checker struct {
	lookPath func(file string) (string, error)
	version  func(ctx context.Context, path string, args ...string) (string, error)
}

func defaultChecker() checker {
	return checker{
		lookPath: exec.LookPath,
		version: func(ctx context.Context, path string, args ...string) (string, error) {
			out, err := exec.CommandContext(ctx, path, args...).Output()
			if err != nil {
				return "", err
			}
			line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
			return line, nil
		},
	}
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run diagnostic checks on your MediaGrab installation",
		Long: `Verifies that the configuration loads and that yt-dlp, ffmpeg and the
download directory are usable. Reports pass/fail for each check.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "MediaGrab Doctor v%s\n", version)
			fmt.Fprintf(out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

			cfg, err := config.Load()
			if err != nil {
				printCheck(out, "FAIL", "Config validation", err.Error())
				return fmt.Errorf("1 check(s) failed")
			}
			printCheck(out, "OK", "Config validation", "valid")

			return runDoctor(cmd.Context(), out, cfg, defaultChecker())
		},
	}
}

// runDoctor checks the runtime dependencies of a loaded config
func runDoctor(ctx context.Context, out io.Writer, cfg *config.Config, c checker) error {
	passed, warned, failed := 1, 0, 0

	// 1. yt-dlp on PATH
	if path, err := c.lookPath(cfg.Downloader.YtDlpPath); err != nil {
		printCheck(out, "FAIL", "yt-dlp", fmt.Sprintf("%s not found: %v", cfg.Downloader.YtDlpPath, err))
		failed++
	} else {
		vctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		v, verr := c.version(vctx, path, "--version")
		cancel()
		if verr != nil {
			printCheck(out, "FAIL", "yt-dlp", fmt.Sprintf("%s does not run: %v", path, verr))
			failed++
		} else {
			printCheck(out, "OK", "yt-dlp", fmt.Sprintf("%s (%s)", path, v))
			passed++
		}
	}

	// 2. ffmpeg, needed for merging and audio extraction
	ffmpeg := cfg.Downloader.FFmpegPath
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	if path, err := c.lookPath(ffmpeg); err != nil {
		printCheck(out, "WARN", "ffmpeg", "not found, audio extraction and merged formats will fail")
		warned++
	} else {
		printCheck(out, "OK", "ffmpeg", path)
		passed++
	}

	// 3. Download directory writable
	ws, err := workspace.NewManager(cfg.Downloader.TempDir).Acquire("doctor")
	if err != nil {
		printCheck(out, "FAIL", "Download dir", err.Error())
		failed++
	} else {
		dir := ws.Dir()
		if err := ws.Release(); err != nil {
			printCheck(out, "WARN", "Download dir", fmt.Sprintf("cannot clean %s: %v", dir, err))
			warned++
		} else {
			printCheck(out, "OK", "Download dir", "writable")
			passed++
		}
	}

	// 4. Instagram metadata API URL
	if u, err := url.Parse(cfg.SaveIG.APIURL); err != nil || u.Host == "" {
		printCheck(out, "FAIL", "SaveIG API", fmt.Sprintf("invalid URL %q", cfg.SaveIG.APIURL))
		failed++
	} else {
		printCheck(out, "OK", "SaveIG API", u.Host)
		passed++
	}

	// 5. Download events
	if cfg.Kafka.EventsEnabled() {
		printCheck(out, "OK", "Kafka events", strings.Join(cfg.Kafka.Brokers, ","))
		passed++
	} else {
		printCheck(out, "WARN", "Kafka events", "disabled (KAFKA_BROKERS is empty)")
		warned++
	}

	fmt.Fprintf(out, "\n━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(out, "Results: %d passed, %d warnings, %d failed\n", passed, warned, failed)
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}

func printCheck(out io.Writer, status, name, detail string) {
	fmt.Fprintf(out, "  [%-4s] %-18s %s\n", status, name, detail)
}
