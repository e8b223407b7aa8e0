package config

// Config is the top-level bookshopctl configuration.
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// APIConfig holds bookshop API connection settings.
type APIConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	TokenEnv string `mapstructure:"token_env"`
	Token    string `mapstructure:"-"` // resolved at runtime, never written
}

// DefaultsConfig holds default values for operations.
type DefaultsConfig struct {
	DataDir  string `mapstructure:"data_dir"`
	PageSize int    `mapstructure:"page_size"`
}

// EffectivePageSize returns the configured page size or the built-in default.
func (d DefaultsConfig) EffectivePageSize() int {
	if d.PageSize > 0 {
		return d.PageSize
	}
	return 5
}
