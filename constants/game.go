package constants

import "time"

// Rate Window
const (
	// RateWindow is the trailing interval over which activations are counted
	RateWindow = 1000 * time.Millisecond
)

// Milestones
var (
	// DefaultThresholds are the activation counts that fire one-time achievements, ascending
	DefaultThresholds = []int64{100, 500, 1000, 2000, 5000, 10000}
)

const (
	// ProgressFallback is the progress bar target once every threshold is achieved
	ProgressFallback int64 = 10000
)

// Secret Sequence
const (
	// SecretBonus is the count added when the secret sequence is entered
	SecretBonus int64 = 100

	// SecretLabel is the achievement label shown for the secret sequence
	SecretLabel = "Konami Code!"
)

// Persistence
const (
	// StorageKey identifies the saved game state in every store backend
	StorageKey = "pumpClickerState"
)
