package config

// Environments
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "warning", "error"}
	validLogFormats   = []string{"text", "json"}
	validEnvironments = []string{EnvironmentDev, EnvironmentStaging, EnvironmentProduction, EnvironmentTest}
)

const (
	minPort = 1
	maxPort = 65535
)
