package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Encoding string

const (
	JSON    Encoding = "json"
	Console Encoding = "console"
)

type Config struct {
	Encoding Encoding
	Verbose  bool
	LogsPath string // optional file receiving a copy of the log
}

// New builds a sugared logger writing to stderr. Only warnings and errors are
// emitted unless Verbose is set.
func New(cfg *Config) (*zap.SugaredLogger, error) {
	builder := zap.NewProductionConfig()

	if cfg.Encoding == "" {
		cfg.Encoding = Console
	}
	builder.Encoding = string(cfg.Encoding)
	builder.Development = cfg.Verbose
	builder.DisableStacktrace = true
	builder.Sampling = nil

	builder.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if cfg.Verbose {
		builder.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	if cfg.Encoding == Console {
		builder.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		builder.EncoderConfig.TimeKey = ""
		builder.EncoderConfig.CallerKey = ""
		builder.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	builder.OutputPaths = []string{"stderr"}
	builder.ErrorOutputPaths = []string{"stderr"}
	if cfg.LogsPath != "" {
		builder.OutputPaths = append(builder.OutputPaths, cfg.LogsPath)
	}

	logger, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// OrNop returns l, or a discarding logger when l is nil.
func OrNop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return Nop()
	}
	return l
}
