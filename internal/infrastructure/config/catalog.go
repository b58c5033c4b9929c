package config

const (
	CatalogSourceFile     = "file"
	CatalogSourceDatabase = "database"
)

// CatalogConfig selects where the recipe catalog is loaded from
type CatalogConfig struct {
	// "file" reads Path directly; "database" reads the tables filled by `catalog import`
	Source string `mapstructure:"source" validate:"required,oneof=file database"`

	// Dataset file (.json, .yaml or .yml), used when Source is "file"
	Path string `mapstructure:"path" validate:"required_if=Source file"`
}
