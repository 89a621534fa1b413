// Package logger builds slog loggers with request-scoped attributes and an
// optional Sentry sink.
//
// # Usage
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "text"}, os.Stderr, requestID)
//	if err != nil {
//		return err
//	}
//	log.InfoContext(ctx, "rewritten", slog.Int("urls", 3))
//
// # Context Extractors
//
// A ContextExtractor returns an attribute taken from the context passed to the
// *Context logging methods:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		id, ok := ctx.Value(requestIDKey{}).(string)
//		return slog.String("request_id", id), ok && id != ""
//	}
//
// Extractors run on every record. Records logged without a context carrying
// the value are left unchanged.
//
// # Sentry
//
// Setting Config.Sentry.DSN (SENTRY_DSN) forwards errors to Sentry as issues
// and warnings as logs. Call Flush before the process exits.
//
// # Defaults
//
// NewNope returns a logger that discards everything and is the default of
// every component accepting a *slog.Logger.
package logger
