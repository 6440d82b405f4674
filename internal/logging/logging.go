// Package logging builds the application logger: leveled slog output to
// stdout, with size/age-bounded file rotation in production.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"linkpulse/internal/config"
)

// NewLogger creates the application logger from config. Development and test
// environments log human-readable text to stdout only; production adds a
// JSON stream into a rotated file under the configured logs directory.
func NewLogger(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)

	if !cfg.IsProduction() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	}

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogsDirectory, cfg.AppName+".log"),
		MaxSize:    cfg.LogsMaxSizeInMb,
		MaxBackups: cfg.LogsMaxBackups,
		MaxAge:     cfg.LogsMaxAgeInDays,
		Compress:   true,
	}
	out := io.MultiWriter(os.Stdout, rotated)
	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

func parseLevel(level config.LogLevel) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelInfo:
		return slog.LevelInfo
	case config.LogLevelWarn:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
