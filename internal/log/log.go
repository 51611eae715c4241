// Package log is a thin leveled logging facade over zap. The default
// logger is a nop so the library stays silent unless the host process
// installs its own logger via SetLogger.
package log

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger replaces the package logger. Passing nil restores the nop
// logger. Safe for concurrent use with the logging functions.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	logger.Store(l)
}

// Debug logs a message at debug level.
func Debug(_ context.Context, msg string, fields ...Field) {
	logger.Load().Debug(msg, fields...)
}

// Info logs a message at info level.
func Info(_ context.Context, msg string, fields ...Field) {
	logger.Load().Info(msg, fields...)
}

// Warn logs a message at warn level.
func Warn(_ context.Context, msg string, fields ...Field) {
	logger.Load().Warn(msg, fields...)
}

// Error logs a message at error level.
func Error(_ context.Context, msg string, fields ...Field) {
	logger.Load().Error(msg, fields...)
}
