package audio

import (
	"math/rand/v2"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pump-clicker/constants"
)

// SoundManager plays feedback sounds through the speaker
// Every Play call before a successful Initialize, or after Cleanup, is a no-op
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	played      [soundTypeCount]uint64

	out   output
	pitch func() float64
}

// output is the audio device, speakerOutput outside tests
type output interface {
	Init(sr beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Init(sr beep.SampleRate, bufferSize int) error { return speaker.Init(sr, bufferSize) }
func (speakerOutput) Play(s beep.Streamer)                          { speaker.Play(s) }
func (speakerOutput) Lock()                                         { speaker.Lock() }
func (speakerOutput) Unlock()                                       { speaker.Unlock() }
func (speakerOutput) Close()                                        { speaker.Close() }

// NewSoundManager creates a manager, nil cfg uses DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		out:   speakerOutput{},
		pitch: rand.Float64,
	}
}

// enqueue adds s to the mixer, which the output goroutine reads concurrently
func (sm *SoundManager) enqueue(s beep.Streamer) {
	sm.out.Lock()
	sm.mixer.Add(s)
	sm.out.Unlock()
}

// Initialize opens the speaker, the game runs silent if this fails
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	sr := beep.SampleRate(sm.cfg.SampleRate)
	if err := sm.out.Init(sr, sr.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	sm.out.Play(sm.mixer)
	sm.initialized = true
	logrus.WithField("sampleRate", sm.cfg.SampleRate).Info("audio initialized")
	return nil
}

// Initialized reports whether sounds are audible
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Lock()
	sm.mixer.Clear()
	sm.out.Unlock()
	sm.out.Close()
	sm.initialized = false
}

// PlayClick plays the activation blip at a random pitch
func (sm *SoundManager) PlayClick() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.enqueue(CreateClickSound(sm.cfg, ClickFrequency(sm.pitch())))
	sm.played[SoundClick]++
}

// PlayAchievement plays the milestone chime
func (sm *SoundManager) PlayAchievement() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.enqueue(CreateAchievementSound(sm.cfg))
	sm.played[SoundAchievement]++
}

// Played returns how many sounds of type t were queued
func (sm *SoundManager) Played(t SoundType) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if t < 0 || t >= soundTypeCount {
		return 0
	}
	return sm.played[t]
}
