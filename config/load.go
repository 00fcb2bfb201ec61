package config

import (
	"fmt"
	"os"
)

// Load resolves the configuration from defaults, the config file and the
// environment, then validates it. The config file is DEVWALLET_CONFIG if
// set, otherwise devwallet.conf beside the executable.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigFile)
	if path == "" {
		path = DefaultConfigFile()
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path. A missing file is not
// an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		values, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		if err := ApplyFileConfig(cfg, values); err != nil {
			return nil, fmt.Errorf("applying config file: %w", err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
