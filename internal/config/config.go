package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Tracking TrackingConfig `yaml:"tracking"`
}

// DataConfig locates the local SQLite file.
type DataConfig struct {
	Dir string `yaml:"dir" env:"BISTRO_DATA_DIR"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"BISTRO_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"BISTRO_LOG_FORMAT" env-default:"console"`
}

// AuthConfig selects the credential verifier behind the profile screen.
type AuthConfig struct {
	Verifier string `yaml:"verifier" env:"BISTRO_AUTH_VERIFIER" env-default:"mock"`
}

// TrackingConfig drives the simulated delivery.
type TrackingConfig struct {
	Interval time.Duration `yaml:"interval" env:"BISTRO_TRACKING_INTERVAL" env-default:"1s"`
	Duration time.Duration `yaml:"duration" env:"BISTRO_TRACKING_DURATION" env-default:"15s"`
}

const (
	VerifierMock   = "mock"
	VerifierBcrypt = "bcrypt"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"console", "json"}
	verifiers  = []string{VerifierMock, VerifierBcrypt}
)

// DBPath returns the SQLite file inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.Data.Dir, "bistro.db")
}

// Validate checks enum values and durations, filling the data directory
// default when unset.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("data.dir: %w", err)
		}
		c.Data.Dir = filepath.Join(home, ".local", "share", "bistro")
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if !slices.Contains(verifiers, c.Auth.Verifier) {
		return fmt.Errorf("auth.verifier: unknown verifier %q", c.Auth.Verifier)
	}
	if c.Tracking.Interval <= 0 {
		return fmt.Errorf("tracking.interval: must be positive")
	}
	if c.Tracking.Duration <= 0 {
		return fmt.Errorf("tracking.duration: must be positive")
	}
	return nil
}
