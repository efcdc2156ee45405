package main

import (
	"github.com/antonguzun/lazy-crafter/internal/config"
	"github.com/antonguzun/lazy-crafter/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source locations only help while developing
	addSource := cfg.Environment == config.EnvironmentDev

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
