// Package log builds zap loggers with rotating file sinks and fold-aware
// error stack rendering.
package log

import "go.uber.org/zap"

// Logger is the key-value logging interface used across the module.
type Logger interface {
	Debug(msg string, kvs ...any)
	Info(msg string, kvs ...any)
	Warn(msg string, kvs ...any)
	Error(msg string, err error, kvs ...any)
}

// NewLogger adapts a zap logger to Logger. kvs are alternating key-value
// pairs; bare zap.Field values are passed through as-is.
func NewLogger(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

type zapLogger struct {
	l *zap.Logger
}

func (z *zapLogger) Debug(msg string, kvs ...any) {
	z.l.Debug(msg, HandleZapFields(kvs)...)
}

func (z *zapLogger) Info(msg string, kvs ...any) {
	z.l.Info(msg, HandleZapFields(kvs)...)
}

func (z *zapLogger) Warn(msg string, kvs ...any) {
	z.l.Warn(msg, HandleZapFields(kvs)...)
}

func (z *zapLogger) Error(msg string, err error, kvs ...any) {
	z.l.Error(msg, HandleZapFields(kvs, zap.Error(err))...)
}
