package config

// Config contains process configuration loaded at startup.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// APIBaseURL points at the PokeAPI root.
	APIBaseURL string `koanf:"api_base_url"`

	// HTTPTimeoutMS bounds each request; 0 keeps the platform default.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`
}

// NewConfig creates a Config with defaults
func NewConfig() *Config {
	return &Config{
		LogLevel:      "info",
		APIBaseURL:    "https://pokeapi.co/api/v2",
		HTTPTimeoutMS: 0,
	}
}
