// Package logger provides structured logging setup for the application.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.Logger configured for the application.
type Logger struct {
	// Log is the underlying zap logger. It is a no-op until Init is called.
	Log *zap.Logger
}

// New returns a Logger with a no-op zap logger so callers can log safely
// before Init.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds the production zap logger at the given level ("debug", "info",
// "warn", "error"). Returns an error if the level cannot be parsed or the
// logger cannot be built.
func (l *Logger) Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = zl
	return nil
}
