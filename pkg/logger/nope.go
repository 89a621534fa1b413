package logger

import (
	"io"
	"log/slog"
)

// NewNope returns a logger that discards everything. Components use it as
// their default so a nil check is never needed.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
