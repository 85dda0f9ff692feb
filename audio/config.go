package audio

import (
	"github.com/lixenwraith/pump-clicker/constants"
)

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns enabled audio at full volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: [soundTypeCount]float64{
			SoundClick:       1.0,
			SoundAchievement: 0.6,
		},
	}
}

// WithMasterVolume returns a copy with volume clamped to [0, 1]
func (c AudioConfig) WithMasterVolume(v float64) *AudioConfig {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	c.MasterVolume = v
	return &c
}
