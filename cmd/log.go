package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger reports diagnostics on stderr, it is silent until Configure is called.
var logger = zap.NewNop()

// newLogger creates a human friendly logger at the given level.
func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg.Build()
}

// Sync flushes the logger, main calls it before exiting.
func Sync() { _ = logger.Sync() }
