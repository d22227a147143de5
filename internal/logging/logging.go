// Package logging builds the zap logger shared by the binaries.
//
// Logs always go to stderr. Stdout is reserved for demo output and the MCP
// protocol stream.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects the level and encoder.
type Options struct {
	Level    string
	Encoding string
}

// New builds a logger writing to stderr. Unknown levels fall back to info and
// any encoding other than "json" selects the console encoder.
func New(opts Options) (*zap.Logger, error) {
	encoding := "console"
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	if strings.EqualFold(strings.TrimSpace(opts.Encoding), "json") {
		encoding = "json"
		encoderCfg = zap.NewProductionEncoderConfig()
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(opts.Level)),
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
