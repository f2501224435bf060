package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvConfigPath names the env var pointing at an optional YAML config file
const EnvConfigPath = "POKEVIEWER_CONFIG"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (NewConfig)
//  2. file (YAML) if POKEVIEWER_CONFIG is set
//  3. env (prefix POKEVIEWER_)
func Load() (*Config, error) {
	base := NewConfig()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: POKEVIEWER_API_BASE_URL, POKEVIEWER_HTTP_TIMEOUT_MS, ...
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("POKEVIEWER_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "pokeviewer_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.APIBaseURL == "" {
		return nil, errors.New("api_base_url must not be empty")
	}
	if cfg.HTTPTimeoutMS < 0 {
		return nil, errors.New("http_timeout_ms must not be negative")
	}
	return &cfg, nil
}
