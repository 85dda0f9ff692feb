package main

import (
	"github.com/lixenwraith/pump-clicker/audio"
	"github.com/lixenwraith/pump-clicker/config"
	"github.com/lixenwraith/pump-clicker/constants"
	"github.com/lixenwraith/pump-clicker/engine"
	"github.com/lixenwraith/pump-clicker/store"
)

func storeOptions(cfg *config.Config) store.Options {
	return store.Options{
		Backend:         cfg.Store,
		Key:             constants.StorageKey,
		Dir:             cfg.SaveDir,
		RedisAddr:       cfg.RedisAddr,
		RedisPassword:   cfg.RedisPassword,
		RedisDB:         cfg.RedisDB,
		RedisMaxRetries: cfg.RedisMaxRetries,
	}
}

func gameConfig(cfg *config.Config) engine.GameConfig {
	return engine.GameConfig{
		Thresholds:       cfg.Thresholds,
		Labels:           cfg.Labels,
		RateInterval:     cfg.RateInterval,
		AutosaveInterval: cfg.AutosaveInterval,
		ProgressFallback: cfg.ProgressFallback,
	}
}

func audioConfig(cfg *config.Config) *audio.AudioConfig {
	ac := audio.DefaultAudioConfig().WithMasterVolume(cfg.MasterVolume)
	ac.Enabled = cfg.AudioEnabled
	return ac
}
