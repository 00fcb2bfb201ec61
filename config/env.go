package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable, e.g. DEVWALLET_LOG_LEVEL.
const EnvPrefix = "DEVWALLET"

// EnvConfigFile names the variable that points at an alternative config file.
const EnvConfigFile = EnvPrefix + "_CONFIG"

// ApplyEnv overrides cfg with any DEVWALLET_* variables that are set.
// Unset variables leave the current values in place.
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}
