package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// New creates a console logger tagged with the service name
func New(level, service string) zerolog.Logger {
	return newWithWriter(zerolog.ConsoleWriter{Out: os.Stdout}, level, service)
}

func newWithWriter(w io.Writer, level, service string) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLogLevel(level))

	ctx := zerolog.New(w).
		With().
		Timestamp().
		Caller()

	if service != "" {
		ctx = ctx.Str("service", service)
	}

	return ctx.Logger()
}

// parseLogLevel parses log level string to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
