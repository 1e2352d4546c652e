package rvrplog

import "go.uber.org/zap"

// Logger is a thin wrapper over *zap.SugaredLogger so call sites pass
// plain key-value pairs without depending on zap.Field construction.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps an existing *zap.Logger.
func New(base *zap.Logger) *Logger {
	if base == nil {
		return Noop()
	}
	return &Logger{sugar: base.Sugar()}
}

// NewProduction builds a Logger from zap's production configuration.
func NewProduction() (*Logger, error) {
	base, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return New(base), nil
}

// Noop returns a Logger that discards everything, for tests and
// callers that don't want logging overhead.
func Noop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Debug logs at debug level with key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.sugar.Debugw(msg, keysAndValues...)
}

// Info logs at info level with key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.sugar.Infow(msg, keysAndValues...)
}

// Warn logs at warn level with key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.sugar.Warnw(msg, keysAndValues...)
}

// Error logs at error level with key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	if l == nil {
		return
	}
	l.sugar.Errorw(msg, keysAndValues...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.sugar.Sync()
}
