package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is a structured logger. The zero value is valid and discards
// every message.
type Logger struct {
	*slog.Logger
	config
}

// Make creates a new [Logger] that writes to w. The default configuration
// is [DefaultFormat], [DefaultLevel], [DefaultTimeLayout], and caller info
// disabled; override with [WithLevel], [WithFormat], [WithTimeLayout],
// [WithCaller], and [WithPretty].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{
		Logger: slog.New(cfg.handler()),
		config: cfg,
	}
}

// With returns a Logger that includes the given attributes in every
// message it emits.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		config: l.config,
	}
}

// Level returns the minimum level of emitted messages.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the output format.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

// TraceContext logs a message at trace level.
func (l Logger) TraceContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelTrace, msg, attrs...)
}

// Trace logs a message at trace level.
func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.logContext(context.Background(), LevelTrace, msg, attrs...)
}

// DebugContext logs a message at debug level.
func (l Logger) DebugContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at debug level.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.logContext(context.Background(), LevelDebug, msg, attrs...)
}

// InfoContext logs a message at info level.
func (l Logger) InfoContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at info level.
func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.logContext(context.Background(), LevelInfo, msg, attrs...)
}

// WarnContext logs a message at warn level.
func (l Logger) WarnContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at warn level.
func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.logContext(context.Background(), LevelWarn, msg, attrs...)
}

// ErrorContext logs a message at error level.
func (l Logger) ErrorContext(
	ctx context.Context,
	msg string,
	attrs ...slog.Attr,
) {
	l.logContext(ctx, LevelError, msg, attrs...)
}

// Error logs a message at error level.
func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.logContext(context.Background(), LevelError, msg, attrs...)
}

// logContext emits one record. The caller PC skips this frame and the
// exported method that called it, so source annotations point at user code.
func (l Logger) logContext(
	ctx context.Context,
	level Level,
	msg string,
	attrs ...slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pcs [1]uintptr

	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pcs[0])
	r.AddAttrs(attrs...)

	_ = l.Handler().Handle(ctx, r)
}

// pkg holds the process-wide default logger; pkgOpts accumulates the
// options applied to it so successive Config calls compose.
var (
	pkg     atomic.Pointer[Logger]
	pkgMu   sync.Mutex
	pkgOpts []Option
)

// Config reconfigures the process-wide default logger. Options accumulate
// across calls, so flag parsing can apply settings incrementally as each
// flag is seen.
func Config(opts ...Option) {
	pkgMu.Lock()
	pkgOpts = append(pkgOpts, opts...)
	l := Make(os.Stderr, pkgOpts...)
	pkgMu.Unlock()

	SetDefault(l)
}

// Default returns the process-wide default logger. Until [SetDefault] is
// called it writes text at [DefaultLevel] to standard error.
func Default() Logger {
	if l := pkg.Load(); l != nil {
		return *l
	}

	l := Make(os.Stderr)
	pkg.CompareAndSwap(nil, &l)

	return *pkg.Load()
}

// SetDefault replaces the process-wide default logger.
func SetDefault(l Logger) {
	pkg.Store(&l)
}

// Trace logs a message at trace level using the default logger.
func Trace(msg string, attrs ...slog.Attr) {
	Default().logContext(context.Background(), LevelTrace, msg, attrs...)
}

// Debug logs a message at debug level using the default logger.
func Debug(msg string, attrs ...slog.Attr) {
	Default().logContext(context.Background(), LevelDebug, msg, attrs...)
}

// Info logs a message at info level using the default logger.
func Info(msg string, attrs ...slog.Attr) {
	Default().logContext(context.Background(), LevelInfo, msg, attrs...)
}

// Warn logs a message at warn level using the default logger.
func Warn(msg string, attrs ...slog.Attr) {
	Default().logContext(context.Background(), LevelWarn, msg, attrs...)
}

// Error logs a message at error level using the default logger.
func Error(msg string, attrs ...slog.Attr) {
	Default().logContext(context.Background(), LevelError, msg, attrs...)
}

// TraceContext logs a message at trace level using the default logger.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelTrace, msg, attrs...)
}

// DebugContext logs a message at debug level using the default logger.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelDebug, msg, attrs...)
}

// InfoContext logs a message at info level using the default logger.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelInfo, msg, attrs...)
}

// WarnContext logs a message at warn level using the default logger.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelWarn, msg, attrs...)
}

// ErrorContext logs a message at error level using the default logger.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().logContext(ctx, LevelError, msg, attrs...)
}
