package logger

import (
	"sync"

	"go.uber.org/zap"

	"inventory-service/pkg/config"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// InitLogger builds the service logger from configuration. Safe to call more
// than once; only the first call wins.
func InitLogger(appConfig *config.Config) {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		if appConfig != nil && appConfig.Server.Env == "development" {
			cfg = zap.NewDevelopmentConfig()
		}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
		zap.ReplaceGlobals(logger)
	})
}

// GetLogger returns the service logger, building a default one if InitLogger
// has not run yet.
func GetLogger() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stdout"}
		logger, err := cfg.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
