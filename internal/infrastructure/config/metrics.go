package config

// MetricsConfig holds metrics collection configuration.
// The CLI is short-lived, so metrics are written once in the Prometheus textfile
// format on exit rather than served.
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// File for the node_exporter textfile collector
	TextfilePath string `mapstructure:"textfile_path" validate:"required_if=Enabled true"`
}
