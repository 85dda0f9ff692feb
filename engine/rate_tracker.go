package engine

import (
	"time"

	"github.com/lixenwraith/pump-clicker/constants"
)

// RateTracker counts activations inside a trailing time window
// Timestamps are assumed non-decreasing for a session; clock rollback is best-effort
type RateTracker struct {
	window  time.Duration
	history []time.Time
}

// NewRateTracker creates a tracker over window, non-positive falls back to constants.RateWindow
func NewRateTracker(window time.Duration) *RateTracker {
	if window <= 0 {
		window = constants.RateWindow
	}
	return &RateTracker{
		window:  window,
		history: make([]time.Time, 0, 32),
	}
}

// Record appends an activation timestamp
func (rt *RateTracker) Record(t time.Time) {
	rt.history = append(rt.history, t)
}

// CurrentRate purges entries at or before now-window and returns the remaining count
func (rt *RateTracker) CurrentRate(now time.Time) int {
	cutoff := now.Add(-rt.window)

	// History is ordered, find first survivor
	keep := 0
	for keep < len(rt.history) && !rt.history[keep].After(cutoff) {
		keep++
	}

	if keep > 0 {
		n := copy(rt.history, rt.history[keep:])
		// Release references held past the new length
		clear(rt.history[n:])
		rt.history = rt.history[:n]
	}

	return len(rt.history)
}

// Len returns retained history length without purging
func (rt *RateTracker) Len() int {
	return len(rt.history)
}

// Window returns the configured window
func (rt *RateTracker) Window() time.Duration {
	return rt.window
}

// Reset discards all history
func (rt *RateTracker) Reset() {
	rt.history = rt.history[:0]
}
