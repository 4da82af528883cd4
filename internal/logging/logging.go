package logging

import (
	"github.com/ledgerlens/ledgerlens/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.SugaredLogger

// Configure initializes the global logger from the current config.
func Configure() {
	cfg := config.GetConfig()

	var level zapcore.Level
	if err := level.Set(cfg.Logging.Level); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Logging.Level == "debug" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.TimeKey = "timestamp"

	logger, err := zapCfg.Build()
	if err != nil {
		// Fall back to a bare logger rather than leave globalLogger nil
		logger = zap.NewExample()
	}

	globalLogger = logger.Sugar().With("component", "ledgerlens")
}

// GetLogger returns the global logger, configuring a default one on
// first use if Configure was never called explicitly.
func GetLogger() *zap.SugaredLogger {
	if globalLogger == nil {
		Configure()
	}
	return globalLogger
}
