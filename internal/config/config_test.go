package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setArgs replaces os.Args for the duration of the test.
func setArgs(t *testing.T, args ...string) {
	t.Helper()
	saved := os.Args
	os.Args = append([]string{"inkwell"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	assert.Equal(t, "inkwell-data", cfg.DataDir)
	assert.Equal(t, "dev", cfg.AppEnv)
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArgs(t)
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "inkwell-data", cfg.DataDir)
	assert.Equal(t, "dev", cfg.AppEnv)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	setArgs(t)
	t.Setenv("INKWELL_DATA_DIR", "/var/lib/inkwell")
	t.Setenv("APP_ENV", "prod")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/inkwell", cfg.DataDir)
	assert.Equal(t, "prod", cfg.AppEnv)
}

func TestLoadConfig_JSONOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir":"/from/json"}`), 0o600))

	setArgs(t, "-c", path)
	t.Setenv("INKWELL_DATA_DIR", "/from/env")
	t.Setenv("APP_ENV", "prod")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from/json", cfg.DataDir)
	assert.Equal(t, "prod", cfg.AppEnv, "fields absent from the file keep earlier values")
}

func TestLoadConfig_FlagsWinLast(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data_dir":"/from/json","app_env":"prod"}`), 0o600))

	setArgs(t, "-c", path, "-d", "/from/flag")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.DataDir)
	assert.Equal(t, "prod", cfg.AppEnv)
}

func TestLoadConfig_MissingJSONFile(t *testing.T) {
	setArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))
	_, err := LoadConfig()
	assert.Error(t, err)
}
