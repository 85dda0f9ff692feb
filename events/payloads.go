package events

// Source identifies the input modality behind an activation
type Source uint8

const (
	SourcePointer Source = iota
	SourceTouch
	SourceKeyboard
)

// String returns the modality name
func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	case SourceKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// ActivationPayload contains activation details
type ActivationPayload struct {
	Source Source
	Count  int64
}

// BonusPayload contains the applied bonus
type BonusPayload struct {
	Amount int64
	Count  int64
}

// CountPayload contains the current activation count
type CountPayload struct {
	Count int64
}

// RatePayload contains activations inside the trailing window
type RatePayload struct {
	Rate int
}

// ProgressPayload contains the 0..1 fraction toward the next threshold
type ProgressPayload struct {
	Fraction float64
	Target   int64
}

// MilestonePayload contains an achievement
// Threshold is 0 for label-only achievements
type MilestonePayload struct {
	Threshold int64
	Label     string
}

// SnapshotPayload contains persisted values
type SnapshotPayload struct {
	ActivationCount    int64
	NextMilestoneIndex int
}

// SaveFailedPayload contains the store error
type SaveFailedPayload struct {
	Err error
}
