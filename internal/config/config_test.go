package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray .env or
// config.yaml leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, VerifierMock, cfg.Auth.Verifier)
	assert.Equal(t, time.Second, cfg.Tracking.Interval)
	assert.Equal(t, 15*time.Second, cfg.Tracking.Duration)
	assert.Equal(t, filepath.Join(dir, ".local", "share", "bistro", "bistro.db"), cfg.DBPath())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("BISTRO_DATA_DIR", "/tmp/bistro-test")
	t.Setenv("BISTRO_AUTH_VERIFIER", "bcrypt")
	t.Setenv("BISTRO_TRACKING_INTERVAL", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/bistro-test", cfg.Data.Dir)
	assert.Equal(t, VerifierBcrypt, cfg.Auth.Verifier)
	assert.Equal(t, 250*time.Millisecond, cfg.Tracking.Interval)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BISTRO_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BISTRO_LOG_LEVEL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_YAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bistro.yaml")
	yaml := "data:\n  dir: /var/lib/bistro\nlog:\n  format: json\ntracking:\n  duration: 30s\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/bistro", cfg.Data.Dir)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 30*time.Second, cfg.Tracking.Duration)
	assert.Equal(t, time.Second, cfg.Tracking.Interval)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/bistro.yaml")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Data:     DataConfig{Dir: "/tmp"},
			Log:      LogConfig{Level: "info", Format: "console"},
			Auth:     AuthConfig{Verifier: VerifierMock},
			Tracking: TrackingConfig{Interval: time.Second, Duration: 15 * time.Second},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "trace" }},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }},
		{"bad verifier", func(c *Config) { c.Auth.Verifier = "ldap" }},
		{"zero interval", func(c *Config) { c.Tracking.Interval = 0 }},
		{"negative duration", func(c *Config) { c.Tracking.Duration = -time.Second }},
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
