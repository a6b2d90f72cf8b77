package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where log records go and which levels are kept.
type Options struct {
	Level    string    // debug, info, warn, error (default: info)
	File     string    // log file path; parent directories are created
	MaxSize  int       // rotation threshold in MB (default: 10)
	MaxFiles int       // rotated files to retain (default: 3)
	Mirror   io.Writer // optional second destination, e.g. os.Stderr for --verbose
}

// New builds a JSON slog.Logger writing to a rotating file.
func New(opts Options) (*slog.Logger, error) {
	if opts.File == "" {
		return nil, fmt.Errorf("logging: no file configured")
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = 10
	}
	maxFiles := opts.MaxFiles
	if maxFiles <= 0 {
		maxFiles = 3
	}

	var w io.Writer = &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    maxSize,
		MaxBackups: maxFiles,
		MaxAge:     30,
		Compress:   true,
	}
	if opts.Mirror != nil {
		w = io.MultiWriter(w, opts.Mirror)
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(opts.Level)})
	return slog.New(handler), nil
}

// ParseLevel maps a level name to a slog.Level. Unknown names get info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Nop returns a logger that discards everything. Intended for tests and
// for callers that have not set up a real logger yet.
func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
