// Package log provides a small structured logging facade over [log/slog].
//
// A [Logger] is created with [Make] and configured at creation time with
// functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
// The zero value of [Logger] is valid and discards every message, so
// library code can hold a Logger unconditionally and let callers opt in.
//
// Beyond the standard slog levels, the package defines [LevelTrace] for
// very verbose diagnostics such as per-parse events. Text output can be
// colorized with [WithPretty] for interactive terminals.
package log
