package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultRatePrecision = 2
	DefaultCatalogPath   = "data/data.json"
	DefaultSQLitePath    = "aic-calculator.db"
)

// registerViperDefaults covers settings whose zero value is meaningful and so cannot
// be filled in after unmarshalling
func registerViperDefaults(v *viper.Viper) {
	v.SetDefault("display.rate_precision", DefaultRatePrecision)
	v.SetDefault("display.colors", true)
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	cfg := &Config{
		Display: DisplayConfig{
			RatePrecision: DefaultRatePrecision,
			Colors:        true,
		},
	}
	SetDefaults(cfg)
	return cfg
}

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = DefaultSQLitePath
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "aic"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "aic_calculator"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Catalog defaults
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSourceFile
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = DefaultCatalogPath
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Display defaults
	if cfg.Display.Locale == "" {
		cfg.Display.Locale = "ja"
	}
}
