// Package logger builds configured slog.Logger instances for the
// session tracking packages.
//
// Defaults are production-safe (JSON, info level, stdout). WithDebug
// flips to human-readable text at debug level, which together with
// session.Config.Debug surfaces every tracker transition:
//
//	log := logger.New(logger.WithDebug("sessionkit"))
//	t, err := session.New(
//	    session.Config{Debug: true},
//	    session.WithLogger(log),
//	)
package logger
