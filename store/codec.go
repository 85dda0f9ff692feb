package store

import (
	"encoding/json"
	"math"

	"github.com/lixenwraith/pump-clicker/engine"
)

// record is the stored layout, field names match the original save format
type record struct {
	ClickCount       int64 `json:"clickCount"`
	CurrentMilestone int   `json:"currentMilestone"`
}

// Encode serializes a snapshot
func Encode(s engine.Snapshot) ([]byte, error) {
	return json.Marshal(record{
		ClickCount:       s.ActivationCount,
		CurrentMilestone: s.NextMilestoneIndex,
	})
}

// Decode parses stored data tolerantly
// Malformed data reports false; missing, non-integer or negative fields become 0
func Decode(data []byte) (engine.Snapshot, bool) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return engine.Snapshot{}, false
	}
	return engine.Snapshot{
		ActivationCount:    nonNegative(raw["clickCount"]),
		NextMilestoneIndex: int(nonNegative(raw["currentMilestone"])),
	}, true
}

// nonNegative accepts whole JSON numbers in int64 range, anything else is 0
func nonNegative(v any) int64 {
	f, ok := v.(float64)
	if !ok || f < 0 || f != math.Trunc(f) || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}
