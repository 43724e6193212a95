// Package log provides the structured logging interface used by cscoracle.
//
// The Logger interface mirrors log/slog's key-value style so callers can plug in
// their own backend. The default backend is zerolog, writing JSON lines.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("oracle").With(
//	    log.ModelNameKey, "LinearThresh",
//	)
//	logger.Debug("labels predicted",
//	    log.OperationKey, log.OperationPredict,
//	    log.SamplesKey, 1000,
//	)
package log

import (
	"context"
)

// Logger is a structured, leveled logger. Fields are alternating key-value
// pairs. When the first field of Error is an error value it is logged under
// the "error" key.
type Logger interface {
	Debug(msg string, fields ...any)
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)

	// With returns a Logger that adds fields to every record.
	With(fields ...any) Logger

	// Enabled reports whether records at level would be emitted. Use it to
	// skip building expensive fields.
	Enabled(ctx context.Context, level Level) bool
}

// Level is a logging level. Values match slog.Level.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LoggerProvider hands out loggers and controls their level.
type LoggerProvider interface {
	GetLogger() Logger
	GetLoggerWithName(name string) Logger
	SetLevel(level Level)
}
