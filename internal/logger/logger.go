package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"storefront-gateway/internal/config"
)

// New builds the process-wide sugared logger from log config.
// Development format keeps console encoding for readable local output.
func New(cfg config.Log) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zc zap.Config
	if cfg.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}
