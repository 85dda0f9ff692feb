package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundClick       SoundType = iota // Button activation
	SoundAchievement                  // Milestone or secret sequence
	soundTypeCount
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
