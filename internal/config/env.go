package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// parseEnv overlays values from the environment. Unset variables leave the
// current (default) values in place.
func parseEnv(cfg *Config) error {
	overlay := *cfg
	if err := envconfig.Process("", &overlay); err != nil {
		return fmt.Errorf("read env config: %w", err)
	}
	if overlay.DataDir != "" {
		cfg.DataDir = overlay.DataDir
	}
	if overlay.AppEnv != "" {
		cfg.AppEnv = overlay.AppEnv
	}
	return nil
}
