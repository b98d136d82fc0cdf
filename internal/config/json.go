package config

import (
	"encoding/json"
	"fmt"
	"os"

	"inkwell/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. Empty fields do
// not override earlier sources.
type jsonConfig struct {
	DataDir string `json:"data_dir"`
	AppEnv  string `json:"app_env"`
}

// parseJSON overlays values from the file named by -c/-config, when given.
func parseJSON(cfg *Config) error {
	path := flagx.ConfigFilePath()
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var c jsonConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if c.DataDir != "" {
		cfg.DataDir = c.DataDir
	}
	if c.AppEnv != "" {
		cfg.AppEnv = c.AppEnv
	}
	return nil
}
