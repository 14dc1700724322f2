package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, "server: 192.168.1.100:27015\npassword: hunter2\noutput: cvars.csv\nlog_level: debug\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "192.168.1.100:27015", cfg.Server)
	assert.Equal(t, "hunter2", cfg.Password)
	assert.Equal(t, "cvars.csv", cfg.Output)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "password: from-file\n")
	t.Setenv("CVARDUMP_PASSWORD", "from-env")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Password)
}

func TestLoad_EnvWithoutFile(t *testing.T) {
	t.Setenv("CVARDUMP_SERVER", "10.0.0.1:27015")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:27015", cfg.Server)
	assert.Empty(t, cfg.Password)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	path := writeConfig(t, "output: x.csv\n")
	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.False(t, Exists(""))
}
