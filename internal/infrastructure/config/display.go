package config

// DisplayConfig controls how trees are rendered
type DisplayConfig struct {
	// Name language: ja or en
	Locale string `mapstructure:"locale" validate:"required,oneof=ja en"`

	// ANSI colors in text output
	Colors bool `mapstructure:"colors"`

	// Decimal places of item rates
	RatePrecision int `mapstructure:"rate_precision" validate:"min=0,max=6"`
}
