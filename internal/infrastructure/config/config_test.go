package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Halasue/endfield-aic-calculator/internal/infrastructure/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("AIC_DISPLAY_LOCALE", "")
	t.Setenv("AIC_CATALOG_SOURCE", "")
}

func TestLoadConfig_Defaults(t *testing.T) {
	// Arrange
	clearEnv(t)
	path := writeConfig(t, "{}\n")

	// Act
	cfg, err := config.LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, config.DefaultSQLitePath, cfg.Database.Path)
	assert.Equal(t, config.CatalogSourceFile, cfg.Catalog.Source)
	assert.Equal(t, config.DefaultCatalogPath, cfg.Catalog.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "ja", cfg.Display.Locale)
	assert.Equal(t, 2, cfg.Display.RatePrecision)
	assert.True(t, cfg.Display.Colors)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoadConfig_FileValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
catalog:
  source: database
database:
  type: postgres
  host: db.internal
display:
  locale: en
  colors: false
  rate_precision: 0
metrics:
  enabled: true
  textfile_path: /var/lib/node_exporter/aic.prom
`)

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, config.CatalogSourceDatabase, cfg.Catalog.Source)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "en", cfg.Display.Locale)
	assert.False(t, cfg.Display.Colors)
	assert.Equal(t, 0, cfg.Display.RatePrecision)
	assert.Equal(t, "/var/lib/node_exporter/aic.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "display:\n  locale: ja\n")
	t.Setenv("AIC_DISPLAY_LOCALE", "en")
	t.Setenv("AIC_CATALOG_SOURCE", "database")
	t.Setenv("DATABASE_URL", "postgresql://aic@localhost/aic")

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Display.Locale)
	assert.Equal(t, "database", cfg.Catalog.Source)
	assert.Equal(t, "postgresql://aic@localhost/aic", cfg.Database.URL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown locale", "display:\n  locale: fr\n", "Config.Display.Locale"},
		{"unknown catalog source", "catalog:\n  source: s3\n", "Config.Catalog.Source"},
		{"metrics without textfile", "metrics:\n  enabled: true\n", "Config.Metrics.TextfilePath"},
		{"log file without path", "logging:\n  output: file\n", "Config.Logging.FilePath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := config.LoadConfig(writeConfig(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	clearEnv(t)

	_, err := config.LoadConfig(writeConfig(t, "display: [unclosed\n"))

	assert.ErrorContains(t, err, "failed to read config file")
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.ValidateConfig(config.Default()))
}

func TestDatabaseConfig_TargetHidesCredentials(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.DatabaseConfig
		expected string
	}{
		{"sqlite file", config.DatabaseConfig{Type: "sqlite", Path: "aic.db"}, "sqlite:aic.db"},
		{"sqlite memory", config.DatabaseConfig{Type: "sqlite"}, "sqlite::memory:"},
		{"postgres url", config.DatabaseConfig{Type: "postgres", URL: "postgresql://aic:secret@db:5432/catalog"}, "postgres:db:5432/catalog"},
		{"postgres fields", config.DatabaseConfig{Type: "postgres", Host: "db", Port: 5432, User: "aic", Password: "secret", Name: "catalog"}, "postgres:db:5432/catalog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := tt.cfg.Target()

			assert.Equal(t, tt.expected, target)
			assert.NotContains(t, target, "secret")
		})
	}
}
