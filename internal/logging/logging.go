package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tmuxbot/tmuxbot/internal/config"
)

// New creates a structured logger for the given environment profile.
// Production gets JSON output at info level; development and staging get a
// human-readable console encoder at debug level.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config
	if env == config.EnvProduction {
		cfg = zap.NewProductionConfig()
		cfg.Encoding = "json"
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
