package observability

import "log/slog"

// SlogLogger adapts a *slog.Logger to the Logger interface so hosts can plug
// the standard structured logger into the scanner.
type SlogLogger struct {
	base *slog.Logger
}

// NewSlog wraps an slog logger; nil uses slog.Default().
func NewSlog(base *slog.Logger) SlogLogger {
	if base == nil {
		base = slog.Default()
	}
	return SlogLogger{base: base}
}

func (l SlogLogger) Debug(msg string, fields ...Field) { l.base.Debug(msg, attrs(fields)...) }
func (l SlogLogger) Info(msg string, fields ...Field)  { l.base.Info(msg, attrs(fields)...) }
func (l SlogLogger) Warn(msg string, fields ...Field)  { l.base.Warn(msg, attrs(fields)...) }
func (l SlogLogger) Error(msg string, fields ...Field) { l.base.Error(msg, attrs(fields)...) }

func (l SlogLogger) With(fields ...Field) Logger {
	return SlogLogger{base: l.base.With(attrs(fields)...)}
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key(), f.Value()))
	}
	return out
}
