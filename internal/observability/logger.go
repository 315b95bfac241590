// Package observability provides run logging and log-safe formatting helpers.
package observability

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

// NewConsoleLogger returns a logger writing timestamped lines to stdout only.
func NewConsoleLogger() *zap.SugaredLogger {
	core := zapcore.NewCore(consoleEncoder(), zapcore.Lock(os.Stdout), zapcore.InfoLevel)
	return zap.New(core).Sugar()
}

// NewRunLogger returns a logger tee'd to stdout and an append-only run-log
// file, plus a close function for the file handle. Every line carries a
// timestamp and level, matching the run-log format consumed by humans.
func NewRunLogger(path string) (*zap.SugaredLogger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open run log %s: %w", path, err)
	}

	enc := consoleEncoder()
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zapcore.InfoLevel),
		zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.InfoLevel),
	)

	logger := zap.New(core)
	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger.Sugar(), closeFn, nil
}
