// Package logger builds log/slog loggers with context extraction and
// multi-destination output.
//
// Diagnostics go to stderr by default so that a command's results on stdout
// stay machine-readable.
//
// # Basic Usage
//
//	log, err := logger.New(logger.Config{Level: "debug", Format: "json"}, nil)
//	if err != nil {
//		return err
//	}
//	log.Info("started")
//
// Passing several writers fans every record out to all of them:
//
//	log, err := logger.New(cfg, []io.Writer{os.Stderr, logFile})
//
// # Context Extractors
//
// A ContextExtractor pulls a request-scoped attribute out of a context on every
// log call:
//
//	lineExtractor := func(ctx context.Context) (slog.Attr, bool) {
//		if n, ok := ctx.Value(lineKey{}).(int); ok {
//			return slog.Int("line", n), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log, _ := logger.New(cfg, nil, lineExtractor)
//	log.WarnContext(ctx, "empty slug") // ... line=12
//
// NewLogHandlerDecorator adds the same behavior to any slog.Handler.
//
// NewNope returns a logger that discards everything, for tests and for
// library code that was not given a logger.
package logger
