package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	"wca-userinfo/services/wcaprofile"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(portEnv, "")
	os.Unsetenv(portEnv)

	cfg, err := loadConfig(filepath.Join(dir, "config.json5"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
	require.Equal(t, defaultConfig(), cfg)

	opts := cfg.ClientOptions()
	require.Equal(t, wcaprofile.DefaultBaseUrl, opts.BaseUrl)
	require.Equal(t, wcaprofile.DefaultTimeout, opts.Timeout)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
		port: 9000,
		timeout_seconds: 5,
	}`), 0600)
	require.NoError(t, err)

	t.Setenv(portEnv, "9100")
	t.Setenv(userAgentEnv, "wca-userinfo-test")

	cfg, err := loadConfig(filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 9100, cfg.Port)
	require.Equal(t, "wca-userinfo-test", cfg.UserAgent)
	require.Equal(t, wcaprofile.DefaultBaseUrl, cfg.BaseUrl)
	require.Equal(t, time.Second*5, cfg.ClientOptions().Timeout)
}

func TestLoadConfigInvalidPortEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(portEnv, "eighty")

	cfg, err := loadConfig(filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, defaultPort, cfg.Port)
}

func TestLoadConfigDotenv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	err := os.WriteFile(envFile, []byte(portEnv+"=9200\n"), 0600)
	require.NoError(t, err)

	t.Setenv(portEnv, "")
	os.Unsetenv(portEnv)

	cfg, err := loadConfig(filepath.Join(dir, "config.json5"), envFile)
	require.NoError(t, err)
	require.Equal(t, 9200, cfg.Port)
}
