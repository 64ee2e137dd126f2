package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the zap logger handed to module services.
// It honours the same level and format settings as New.
func NewZapLogger(cfg *Config) (*zap.Logger, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var zcfg zap.Config
	switch strings.ToLower(cfg.Format) {
	case "text":
		zcfg = zap.NewDevelopmentConfig()
	default:
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.TimeKey = "time"
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	level, err := zapcore.ParseLevel(normalizeZapLevel(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Output != nil {
		encoder := zapcore.NewJSONEncoder(zcfg.EncoderConfig)
		if strings.ToLower(cfg.Format) == "text" {
			encoder = zapcore.NewConsoleEncoder(zcfg.EncoderConfig)
		}
		core := zapcore.NewCore(encoder, zapcore.AddSync(cfg.Output), zcfg.Level)
		return zap.New(core), nil
	}

	return zcfg.Build()
}

func normalizeZapLevel(level string) string {
	switch strings.ToLower(level) {
	case "debug", "warn", "error":
		return strings.ToLower(level)
	case "warning":
		return "warn"
	default:
		return "info"
	}
}
