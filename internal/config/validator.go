package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig is returned when a setting is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks every setting and reports all problems at once
func (c *Config) Validate() error {
	var problems []string

	if c.Port < minPort || c.Port > maxPort {
		problems = append(problems, fmt.Sprintf("PORT must be between %d and %d, got %d", minPort, maxPort, c.Port))
	}
	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel))
	}
	if !slices.Contains(validLogFormats, strings.ToLower(c.LogFormat)) {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be one of %s, got %q", strings.Join(validLogFormats, ", "), c.LogFormat))
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		problems = append(problems, fmt.Sprintf("ENVIRONMENT must be one of %s, got %q", strings.Join(validEnvironments, ", "), c.Environment))
	}
	if c.DataDir == "" {
		problems = append(problems, "DATA_DIR must be set")
	}
	for name, file := range map[string]string{
		"MODS_FILE":         c.ModsFile,
		"BASE_ITEMS_FILE":   c.BaseItemsFile,
		"TRANSLATIONS_FILE": c.TranslationsFile,
	} {
		if file == "" {
			problems = append(problems, name+" must be set")
		}
	}
	if c.ValidateData && c.SchemaDir == "" {
		problems = append(problems, "SCHEMA_DIR must be set when VALIDATE_DATA is enabled")
	}
	if c.MaxRequestBytes <= 0 {
		problems = append(problems, fmt.Sprintf("MAX_REQUEST_BYTES must be positive, got %d", c.MaxRequestBytes))
	}
	if c.CacheSize <= 0 {
		problems = append(problems, fmt.Sprintf("CACHE_SIZE must be positive, got %d", c.CacheSize))
	}
	if c.CacheTTL <= 0 {
		problems = append(problems, fmt.Sprintf("CACHE_TTL must be positive, got %s", c.CacheTTL))
	}
	if c.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}

	if len(problems) == 0 {
		return nil
	}
	slices.Sort(problems)
	return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(problems, "\n  - "))
}

// Warnings lists settings that are valid but unusual for the environment
func (c *Config) Warnings() []string {
	var warnings []string
	if c.IsProduction() && !c.ValidateData {
		warnings = append(warnings, "VALIDATE_DATA is disabled in production - malformed game data will only fail at decode time")
	}
	if c.IsProduction() && strings.EqualFold(c.LogLevel, "debug") {
		warnings = append(warnings, "LOG_LEVEL is debug in production")
	}
	if c.IsProduction() && c.APIKey == "" {
		warnings = append(warnings, "API_KEY is empty in production - the API is unauthenticated")
	}
	if c.PresetsDir == "" {
		warnings = append(warnings, "PRESETS_DIR is empty - presets are disabled")
	}
	return warnings
}
