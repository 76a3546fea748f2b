// =============================================================================
// Consumer Complaints Report - Logging
// =============================================================================
//
// The pipeline never touches process-wide logging state. It receives a
// Logger from its caller; the CLI builds one here from configuration.
//
// OUTPUT:
//   JSON records (log/slog) written to the log file and, when verbose, to
//   stderr as well.
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ginjaninja78/consumer-complaints/pkg/utils"
)

// Logger is the logging surface the pipeline depends on. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// New returns a JSON slog logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Open creates (or appends to) the log file at path and returns a logger
// over it. With alsoStderr set, records are duplicated to stderr. The
// returned closer releases the file.
func Open(path, level string, alsoStderr bool) (*slog.Logger, io.Closer, error) {
	if err := utils.EnsureParentDir(path); err != nil {
		return nil, nil, err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var w io.Writer = file
	if alsoStderr {
		w = io.MultiWriter(file, os.Stderr)
	}

	return New(w, level), file, nil
}

// ParseLevel maps a config level name to a slog level. Unknown names fall
// back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
