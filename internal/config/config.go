package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT"         envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"   envDefault:"text"`
	Environment string `env:"ENVIRONMENT"  envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"lazy-crafter"`
	Version     string `env:"VERSION"      envDefault:"dev"`

	// Game data tables. File names are relative to DataDir unless absolute.
	DataDir             string `env:"DATA_DIR"             envDefault:"data"`
	ModsFile            string `env:"MODS_FILE"            envDefault:"mods.json"`
	BaseItemsFile       string `env:"BASE_ITEMS_FILE"      envDefault:"base_items.json"`
	TranslationsFile    string `env:"TRANSLATIONS_FILE"    envDefault:"stat_translations.json"`
	RepresentationsFile string `env:"REPRESENTATIONS_FILE" envDefault:"mods_representation.json"`
	SchemaDir           string `env:"SCHEMA_DIR"           envDefault:"configs/schemas"`
	ValidateData        bool   `env:"VALIDATE_DATA"        envDefault:"true"`

	PresetsDir string `env:"PRESETS_DIR" envDefault:"configs/presets"`

	// HTTP surface. An empty APIKey leaves the API open.
	APIKey          string   `env:"API_KEY"`
	TrustedProxies  []string `env:"TRUSTED_PROXIES"   envSeparator:","`
	MaxRequestBytes int64    `env:"MAX_REQUEST_BYTES" envDefault:"1048576"`

	CacheSize       int           `env:"CACHE_SIZE"       envDefault:"256"`
	CacheTTL        time.Duration `env:"CACHE_TTL"        envDefault:"30m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv fills target from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// DataPath resolves a data file name against DataDir
func (c *Config) DataPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}
