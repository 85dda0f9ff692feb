package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Load reads an optional .env file, then parses the environment
// envFile "" means ".env" in the working directory, a missing default file is not an error
func Load(envFile string) (*Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = ".env"
	}

	if err := godotenv.Load(envFile); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
		logrus.Debugf("no %s file, using process environment", envFile)
	} else {
		logrus.Infof("loaded environment variables from %s", envFile)
	}

	return Parse()
}

// Parse reads the process environment without touching .env files
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	if cfg.MilestonesFile != "" {
		ms, err := LoadMilestones(cfg.MilestonesFile)
		if err != nil {
			return nil, err
		}
		cfg.Thresholds, cfg.Labels = ms.Split()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and cross-field constraints
func (c *Config) Validate() error {
	switch strings.ToLower(c.Store) {
	case "file", "redis", "memory":
	default:
		return fmt.Errorf("invalid PUMP_STORE: %q (must be file, redis or memory)", c.Store)
	}

	if len(c.Thresholds) == 0 {
		return fmt.Errorf("PUMP_THRESHOLDS must not be empty")
	}
	for i, t := range c.Thresholds {
		if t <= 0 {
			return fmt.Errorf("invalid threshold %d: must be positive", t)
		}
		if i > 0 && t <= c.Thresholds[i-1] {
			return fmt.Errorf("thresholds must be strictly ascending: %d after %d", t, c.Thresholds[i-1])
		}
	}

	if c.ProgressFallback <= 0 {
		return fmt.Errorf("invalid PUMP_PROGRESS_FALLBACK: %d (must be positive)", c.ProgressFallback)
	}
	if c.RateInterval <= 0 {
		return fmt.Errorf("invalid PUMP_RATE_INTERVAL: %v (must be positive)", c.RateInterval)
	}
	if c.AutosaveInterval <= 0 {
		return fmt.Errorf("invalid PUMP_AUTOSAVE_INTERVAL: %v (must be positive)", c.AutosaveInterval)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("invalid PUMP_MASTER_VOLUME: %v (must be 0-1)", c.MasterVolume)
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("invalid PUMP_REDIS_DB: %d", c.RedisDB)
	}
	return nil
}
