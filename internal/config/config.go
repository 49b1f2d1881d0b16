// Package config loads service settings from an optional yaml file with
// environment variable overrides. Defaults work with no file present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"asset-dashboard/internal/retry"
	"asset-dashboard/pkg/utils"
)

// Config holds everything the dashboard binaries need at startup.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	DBPath      string `yaml:"db_path"`
	UpstreamURL string `yaml:"upstream_url"`

	Retry struct {
		MaxAttempts int    `yaml:"max_attempts"`
		BaseDelay   string `yaml:"base_delay"`
	} `yaml:"retry"`
}

// Default returns the configuration used when no file or env overrides
// are present.
func Default() Config {
	cfg := Config{
		ListenAddr: ":8080",
		DBPath:     "dashboard.db",
	}
	cfg.Retry.MaxAttempts = 3
	cfg.Retry.BaseDelay = "500ms"
	return cfg
}

// Load reads the config file at path (if it exists), then applies env
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("UPSTREAM_URL"); v != "" {
		cfg.UpstreamURL = v
	}
	if v := os.Getenv("RETRY_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Retry.MaxAttempts = n
		}
	}
	if v := os.Getenv("RETRY_BASE_DELAY"); v != "" {
		cfg.Retry.BaseDelay = v
	}
}

// RetryPolicy converts the configured knobs into an executor policy.
func (c Config) RetryPolicy() retry.Policy {
	policy := retry.DefaultPolicy()
	if c.Retry.MaxAttempts >= 1 {
		policy.MaxAttempts = c.Retry.MaxAttempts
	}
	policy.BaseDelay = utils.ParseDuration(c.Retry.BaseDelay, 500*time.Millisecond)
	return policy
}
