package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidThresholds is returned for empty, non-positive or non-ascending threshold lists
var ErrInvalidThresholds = errors.New("milestone thresholds must be positive and strictly ascending")

// MilestoneEngine fires each threshold exactly once, in ascending order
//
// State is the cursor into thresholds: [0, N], N is terminal (all achieved)
// Thresholds beyond the configured list are never evaluated
type MilestoneEngine struct {
	thresholds []int64
	next       int
}

// NewMilestoneEngine validates and copies thresholds
func NewMilestoneEngine(thresholds []int64) (*MilestoneEngine, error) {
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrInvalidThresholds)
	}
	for i, v := range thresholds {
		if v <= 0 {
			return nil, fmt.Errorf("%w: threshold %d is %d", ErrInvalidThresholds, i, v)
		}
		if i > 0 && v <= thresholds[i-1] {
			return nil, fmt.Errorf("%w: threshold %d (%d) not above %d", ErrInvalidThresholds, i, v, thresholds[i-1])
		}
	}

	owned := make([]int64, len(thresholds))
	copy(owned, thresholds)
	return &MilestoneEngine{thresholds: owned}, nil
}

// Check advances past every threshold count has reached and returns them ascending
// Returns nil when nothing new was achieved
func (me *MilestoneEngine) Check(count int64) []int64 {
	var achieved []int64
	for me.next < len(me.thresholds) && count >= me.thresholds[me.next] {
		achieved = append(achieved, me.thresholds[me.next])
		me.next++
	}
	return achieved
}

// Next returns the threshold not yet achieved, false once terminal
func (me *MilestoneEngine) Next() (int64, bool) {
	if me.Terminal() {
		return 0, false
	}
	return me.thresholds[me.next], true
}

// Index returns the cursor (count of achieved thresholds)
func (me *MilestoneEngine) Index() int {
	return me.next
}

// Len returns the number of thresholds
func (me *MilestoneEngine) Len() int {
	return len(me.thresholds)
}

// Terminal reports whether every threshold has been achieved
func (me *MilestoneEngine) Terminal() bool {
	return me.next >= len(me.thresholds)
}

// Thresholds returns a copy of the configured thresholds
func (me *MilestoneEngine) Thresholds() []int64 {
	out := make([]int64, len(me.thresholds))
	copy(out, me.thresholds)
	return out
}

// setIndex moves the cursor without firing, used by restore only
// Out of range values reset to 0
func (me *MilestoneEngine) setIndex(i int) {
	if i < 0 || i > len(me.thresholds) {
		i = 0
	}
	me.next = i
}
