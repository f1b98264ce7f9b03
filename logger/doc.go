// Package logger provides labelled, leveled console logging with colorized
// level tags and cached sub-loggers.
//
// # Console Output
//
// Every emitted line is the optional prefix, the bracketed label, the level
// tag and the caller's values, joined by spaces:
//
//	[app] [WARN] disk low
//
// Debug, info and success go to stdout; warn, error and fail go to stderr.
// Tags are colorized when stdout is a terminal (see WithColor).
//
// # Features
//
//   - One method per level: Debug, Info, Warn, Error, Success, Fail, with
//     the short aliases D, I, W, E, S, F
//   - Raw/R for unfiltered, untagged output
//   - Sub-loggers whose label extends the parent's, cached per label
//   - Configuration read through a Provider on every call, so levels can
//     change at runtime
//   - Hooks that rewrite the leading arguments or replace the sink
//   - Journald priority prefixes for console output when JOURNAL_STREAM is set
//
// # Usage
//
// Build a factory once and create loggers from it:
//
//	log := logger.Build(nil).New("app")
//	log.Info("listening on", 8080)
//	log.Sub(":db").W("slow query", elapsed)
//
// # Level Filtering
//
// The levels are ordered none < fail < error < warn < success < info < debug.
// A message is emitted when its level is at or below the configured one;
// fail counts as error and success counts as info:
//
//	factory := logger.Build(func() logger.Config {
//		return logger.Config{LogLevel: logger.LevelWarn}
//	})
//
// Providers for environment variables and config files live in the
// provider sub-package.
package logger
