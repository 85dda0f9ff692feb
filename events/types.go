package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventActivation signals one logical activation was counted
	// Trigger: Game.Activate | Consumer: audio feedback, metrics, renderer effect
	// Payload: *ActivationPayload
	EventActivation EventType = iota

	// EventBonus signals a bonus jump of the counter
	// Trigger: Game.Bonus, secret sequence | Payload: *BonusPayload
	EventBonus

	// EventCountChanged carries the new activation count
	// Consumer: Sink.OnCountChanged | Payload: *CountPayload
	EventCountChanged

	// EventRateChanged carries activations per second
	// Trigger: activation, rate recompute task | Payload: *RatePayload
	EventRateChanged

	// EventProgressChanged carries the fraction toward the next threshold
	// Payload: *ProgressPayload
	EventProgressChanged

	// EventMilestoneAchieved fires once per crossed threshold, ascending
	// Also used for the secret sequence notification (Threshold 0, Label set)
	// Payload: *MilestonePayload
	EventMilestoneAchieved

	// EventSecretSequence signals the secret key sequence was entered
	// Payload: nil
	EventSecretSequence

	// EventStateRestored signals a persisted snapshot was applied at startup
	// Payload: *SnapshotPayload
	EventStateRestored

	// EventStateSaved signals a snapshot reached the store
	// Payload: *SnapshotPayload
	EventStateSaved

	// EventSaveFailed signals a store write error, the game keeps running
	// Payload: *SaveFailedPayload
	EventSaveFailed
)

// String returns the event name for logs
func (t EventType) String() string {
	switch t {
	case EventActivation:
		return "Activation"
	case EventBonus:
		return "Bonus"
	case EventCountChanged:
		return "CountChanged"
	case EventRateChanged:
		return "RateChanged"
	case EventProgressChanged:
		return "ProgressChanged"
	case EventMilestoneAchieved:
		return "MilestoneAchieved"
	case EventSecretSequence:
		return "SecretSequence"
	case EventStateRestored:
		return "StateRestored"
	case EventStateSaved:
		return "StateSaved"
	case EventSaveFailed:
		return "SaveFailed"
	default:
		return "Unknown"
	}
}

// GameEvent is a routed game event
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
