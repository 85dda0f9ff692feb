package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pump-clicker/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// rampEnvelope multiplies a stream by a gain falling exponentially from start to end
type rampEnvelope struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	ratio    float64 // end / start
}

// NewExponentialRamp shapes s over duration, start and end must be positive
func NewExponentialRamp(s beep.Streamer, duration time.Duration, start, end float64, rate beep.SampleRate) beep.Streamer {
	return &rampEnvelope{
		streamer: s,
		total:    rate.N(duration),
		start:    start,
		ratio:    end / start,
	}
}

func (e *rampEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		progress := 1.0
		if e.total > 0 {
			progress = math.Min(float64(e.position)/float64(e.total), 1.0)
		}
		gain := e.start * math.Pow(e.ratio, progress)
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *rampEnvelope) Err() error { return e.streamer.Err() }

// envelope applies linear attack/release shaping
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume, 0 is silent
// math.Log2(0) is -Inf, so zero volume uses Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ClickFrequency maps r in [0, 1) to the click pitch range
func ClickFrequency(r float64) float64 {
	return constants.ClickSoundBaseFreq + r*constants.ClickSoundFreqRange
}

// CreateClickSound generates a short sine blip with a falling exponential gain
func CreateClickSound(cfg *AudioConfig, freq float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(freq, constants.ClickSoundDuration, WaveSine, rate)
	shaped := NewExponentialRamp(osc, constants.ClickSoundDuration,
		constants.ClickSoundStartGain, constants.ClickSoundEndGain, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundClick]*cfg.MasterVolume)
}

// CreateAchievementSound generates a two-note chime
func CreateAchievementSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constants.ChimeNote1Freq, constants.ChimeNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.ChimeNote1Duration, constants.ChimeAttack, constants.ChimeNote1Release, rate)

	n2 := NewOscillator(constants.ChimeNote2Freq, constants.ChimeNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.ChimeNote2Duration, constants.ChimeAttack, constants.ChimeNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.EffectVolumes[SoundAchievement]*cfg.MasterVolume)
}
