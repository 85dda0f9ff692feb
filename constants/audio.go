package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Click Sound
const (
	ClickSoundDuration  = 100 * time.Millisecond
	ClickSoundBaseFreq  = 800.0
	ClickSoundFreqRange = 400.0
	ClickSoundStartGain = 0.3
	ClickSoundEndGain   = 0.01
)

// Achievement Chime Timing
const (
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Duration = 100 * time.Millisecond
	ChimeNote1Release  = 50 * time.Millisecond
	ChimeNote2Duration = 400 * time.Millisecond
	ChimeNote2Release  = 350 * time.Millisecond
	ChimeNote1Freq     = 987.77
	ChimeNote2Freq     = 1318.51
)
