package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/pump-clicker/constants"
)

// ErrInvalidBonus is returned when a bonus is not a positive integer
var ErrInvalidBonus = errors.New("bonus must be positive")

// Snapshot is the persisted subset of game state
// History and thresholds are not persisted
type Snapshot struct {
	ActivationCount    int64
	NextMilestoneIndex int
}

// ActivationResult reports the outcome of one state mutation
type ActivationResult struct {
	Count    int64
	Achieved []int64 // Thresholds newly crossed, ascending
}

// GameState is the counter, rate history and milestone progress of one session
//
// Ownership: mutated only by the event loop goroutine through RecordActivation
// and ApplyBonus, increment and milestone check happen in one call
type GameState struct {
	count      int64
	rate       *RateTracker
	milestones *MilestoneEngine

	// Progress target once milestones are terminal
	progressFallback int64
}

// NewGameState creates a fresh state over thresholds
// rateWindow <= 0 uses constants.RateWindow, progressFallback <= 0 uses constants.ProgressFallback
func NewGameState(thresholds []int64, rateWindow time.Duration, progressFallback int64) (*GameState, error) {
	me, err := NewMilestoneEngine(thresholds)
	if err != nil {
		return nil, fmt.Errorf("failed to create milestone engine: %w", err)
	}
	if progressFallback <= 0 {
		progressFallback = constants.ProgressFallback
	}
	return &GameState{
		rate:             NewRateTracker(rateWindow),
		milestones:       me,
		progressFallback: progressFallback,
	}, nil
}

// RecordActivation counts one logical activation at now
func (gs *GameState) RecordActivation(now time.Time) ActivationResult {
	gs.add(1)
	gs.rate.Record(now)
	return ActivationResult{
		Count:    gs.count,
		Achieved: gs.milestones.Check(gs.count),
	}
}

// ApplyBonus adds n atomically and fires every threshold the jump crosses
// Bonus clicks are not physical activations and do not enter the rate history
func (gs *GameState) ApplyBonus(n int64) (ActivationResult, error) {
	if n <= 0 {
		return ActivationResult{Count: gs.count}, fmt.Errorf("%w: %d", ErrInvalidBonus, n)
	}
	gs.add(n)
	return ActivationResult{
		Count:    gs.count,
		Achieved: gs.milestones.Check(gs.count),
	}, nil
}

// add grows the count by n > 0, saturating instead of wrapping to keep the counter monotonic
func (gs *GameState) add(n int64) {
	if gs.count > math.MaxInt64-n {
		gs.count = math.MaxInt64
		return
	}
	gs.count += n
}

// Snapshot returns the persistable subset
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		ActivationCount:    gs.count,
		NextMilestoneIndex: gs.milestones.Index(),
	}
}

// Restore loads a possibly invalid snapshot without replaying achievements
// Negative count and out of range index default to 0
func (gs *GameState) Restore(s Snapshot) {
	count := s.ActivationCount
	if count < 0 {
		count = 0
	}
	gs.count = count
	gs.milestones.setIndex(s.NextMilestoneIndex)
	gs.rate.Reset()
}

// Count returns the activation count
func (gs *GameState) Count() int64 {
	return gs.count
}

// Rate returns activations inside the trailing window ending at now
func (gs *GameState) Rate(now time.Time) int {
	return gs.rate.CurrentRate(now)
}

// Milestones exposes the milestone engine for read-only queries
func (gs *GameState) Milestones() *MilestoneEngine {
	return gs.milestones
}

// NextTarget returns the threshold progress is measured against
func (gs *GameState) NextTarget() int64 {
	if next, ok := gs.milestones.Next(); ok {
		return next
	}
	return gs.progressFallback
}

// Progress returns min((count mod target) / target, 1.0)
func (gs *GameState) Progress() float64 {
	target := gs.NextTarget()
	p := float64(gs.count%target) / float64(target)
	return math.Min(p, 1.0)
}
