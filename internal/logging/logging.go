// Package logging builds the zap logger used across chessrules.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chessrules-go/internal/config"
)

// New returns a logger writing to cfg.File at cfg.Level. JSON format uses
// the production encoder; console format uses the development encoder.
func New(cfg *config.LogConfig) *zap.Logger {
	if cfg == nil || cfg.File == nil {
		return zap.NewNop()
	}

	var encoderCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder
	switch cfg.Format {
	case config.JSONLog:
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(cfg.File), zap.NewAtomicLevelAt(cfg.Level))
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(cfg.File)))
}

// Named returns a child logger for a component, or a no-op logger if
// parent is nil.
func Named(parent *zap.Logger, component string) *zap.Logger {
	if parent == nil {
		return zap.NewNop()
	}
	return parent.Named(component)
}
