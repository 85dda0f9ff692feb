package constants

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// RateUpdateInterval is how often the clicks-per-second window is recomputed
	RateUpdateInterval = 1000 * time.Millisecond

	// AutosaveInterval is the cadence of periodic snapshot persistence
	AutosaveInterval = 5000 * time.Millisecond

	// SaveTimeout bounds a single store round trip
	SaveTimeout = 2 * time.Second
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event queue
	EventQueueSize = 256
)
