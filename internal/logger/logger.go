// Package logger configures the process-wide structured logger. The
// terminal is owned by the TUI, so logs go to a writer (a file in
// production) rather than stdout.
package logger

import (
	"io"
	"log/slog"
)

// Setup returns a JSON slog.Logger writing to w.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetupDefault installs a JSON logger writing to w as the global logger.
func SetupDefault(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	slog.SetDefault(Setup(w))
}
