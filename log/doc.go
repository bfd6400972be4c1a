// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information, and
// output formats that are applied at logger creation time using functional
// options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//	logger.Info("interpreter started", slog.String("source", path))
//
// Loggers are immutable values. [Logger.Wrap] derives a logger with modified
// configuration, and [Logger.With] derives one carrying extra attributes:
//
//	logger = logger.With(slog.String("component", "repl"))
//
// Each level has a context-aware variant ([Logger.InfoContext] and friends);
// the context-unaware methods call them with [DefaultContextProvider].
//
// Beyond the standard slog levels, the package defines [LevelTrace] below
// Debug for high-volume diagnostics such as per-token or per-node traces.
//
// Two output formats are supported, [FormatText] (default) and [FormatJSON],
// each with an optional colorized pretty variant enabled by [WithPretty].
//
// Package-level functions ([Info], [Error], [Config], ...) operate on a
// default logger writing to stderr.
package log
