package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a logger writing to w (stdout when nil) in the configured format.
// When a Sentry DSN is configured, records are also forwarded to Sentry; if
// Sentry cannot be initialized the logger falls back to w alone and reports
// the failure through itself.
func New(cfg Config, w io.Writer, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}

	if !cfg.Sentry.enabled() {
		return slog.New(NewContextHandler(handler, extractors...)), nil
	}

	sentryHandler, err := newSentryHandler(cfg.Sentry)
	if err != nil {
		l := slog.New(NewContextHandler(handler, extractors...))
		l.Error("sentry disabled", slog.String("error", err.Error()))
		return l, nil
	}

	return slog.New(NewContextHandler(newFanoutHandler(handler, sentryHandler), extractors...)), nil
}
