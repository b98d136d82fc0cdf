// Package config handles configuration for the Inkwell CLI: defaults, then
// environment variables, then an optional JSON overlay, then command-line
// flags. Later sources take precedence.
package config

// Config holds runtime settings.
//
// Fields:
//   - DataDir: directory holding the persisted collections and the cached
//     session (one JSON file per collection).
//   - AppEnv: "dev" enables debug logging.
type Config struct {
	DataDir string `envconfig:"INKWELL_DATA_DIR"`
	AppEnv  string `envconfig:"APP_ENV"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "inkwell-data"
	c.AppEnv = "dev"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file, and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
