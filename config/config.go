// Package config loads runtime settings from the environment
package config

import (
	"time"
)

// Config holds every PUMP_* setting
type Config struct {
	// Persistence
	Store           string `env:"PUMP_STORE" envDefault:"file"`
	SaveDir         string `env:"PUMP_SAVE_DIR" envDefault:".pump-clicker"`
	RedisAddr       string `env:"PUMP_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"PUMP_REDIS_PASSWORD"`
	RedisDB         int    `env:"PUMP_REDIS_DB" envDefault:"0"`
	RedisMaxRetries uint64 `env:"PUMP_REDIS_MAX_RETRIES" envDefault:"5"`

	// Progression
	Thresholds       []int64 `env:"PUMP_THRESHOLDS" envSeparator:"," envDefault:"100,500,1000,2000,5000,10000"`
	MilestonesFile   string  `env:"PUMP_MILESTONES_FILE"`
	ProgressFallback int64   `env:"PUMP_PROGRESS_FALLBACK" envDefault:"10000"`

	// Scheduling
	RateInterval     time.Duration `env:"PUMP_RATE_INTERVAL" envDefault:"1s"`
	AutosaveInterval time.Duration `env:"PUMP_AUTOSAVE_INTERVAL" envDefault:"5s"`

	// Audio
	AudioEnabled bool    `env:"PUMP_AUDIO_ENABLED" envDefault:"true"`
	MasterVolume float64 `env:"PUMP_MASTER_VOLUME" envDefault:"1.0"`

	// Diagnostics
	Debug       bool   `env:"PUMP_DEBUG" envDefault:"false"`
	MetricsFile string `env:"PUMP_METRICS_FILE"`

	// Labels per threshold, filled from MilestonesFile
	Labels map[int64]string
}
