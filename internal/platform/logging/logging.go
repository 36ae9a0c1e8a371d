package logging

import (
	"log/slog"
	"os"
)

// New builds the process logger: text lines on stderr so they never mix with
// prompt rendering or command output on stdout. Debug level exposes request
// and store activity.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
