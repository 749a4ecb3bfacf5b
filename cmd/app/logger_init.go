package main

import (
	"os"

	"github.com/avenmore/focusquest/internal/config"
	"github.com/avenmore/focusquest/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info is only worth the overhead in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	version := os.Getenv("VERSION")
	if version == "" {
		version = logger.DefaultVersion
	}

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
