package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pump-clicker/constants"
	"github.com/lixenwraith/pump-clicker/events"
)

// SnapshotStore persists snapshots between sessions
// Load reports false when no usable state exists; malformed data is absence, not error
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, bool, error)
	Save(ctx context.Context, s Snapshot) error
}

// GameConfig holds session tuning, zero values fall back to constants
type GameConfig struct {
	Thresholds       []int64
	Labels           map[int64]string // Optional display label per threshold
	RateWindow       time.Duration
	RateInterval     time.Duration
	AutosaveInterval time.Duration
	SaveTimeout      time.Duration
	ProgressFallback int64
}

func (c GameConfig) withDefaults() GameConfig {
	if len(c.Thresholds) == 0 {
		c.Thresholds = constants.DefaultThresholds
	}
	if c.RateWindow <= 0 {
		c.RateWindow = constants.RateWindow
	}
	if c.RateInterval <= 0 {
		c.RateInterval = constants.RateUpdateInterval
	}
	if c.AutosaveInterval <= 0 {
		c.AutosaveInterval = constants.AutosaveInterval
	}
	if c.SaveTimeout <= 0 {
		c.SaveTimeout = constants.SaveTimeout
	}
	if c.ProgressFallback <= 0 {
		c.ProgressFallback = constants.ProgressFallback
	}
	return c
}

// Game drives one session: input activations -> state -> events -> collaborators
//
// Not safe for concurrent use; the event loop owns it
type Game struct {
	cfg   GameConfig
	state *GameState
	clock TimeProvider
	store SnapshotStore

	scheduler *Scheduler
	queue     *events.EventQueue
	router    *events.Router

	rateTask TaskID
	saveTask TaskID

	lastRate int
	started  bool
}

// NewGame creates a session, store may be nil for an unpersisted game
func NewGame(cfg GameConfig, clock TimeProvider, store SnapshotStore) (*Game, error) {
	cfg = cfg.withDefaults()
	if clock == nil {
		clock = NewRealTimeProvider()
	}

	state, err := NewGameState(cfg.Thresholds, cfg.RateWindow, cfg.ProgressFallback)
	if err != nil {
		return nil, err
	}

	queue := events.NewEventQueue()
	return &Game{
		cfg:       cfg,
		state:     state,
		clock:     clock,
		store:     store,
		scheduler: NewScheduler(clock),
		queue:     queue,
		router:    events.NewRouter(queue),
	}, nil
}

// Register adds a collaborator, must be called before Start
func (g *Game) Register(handler events.Handler) {
	g.router.Register(handler)
}

// State exposes the game state for read-only queries
func (g *Game) State() *GameState {
	return g.state
}

// Scheduler exposes the recurring task scheduler to the event loop
func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

// Dropped returns how many events were lost to queue overflow
func (g *Game) Dropped() uint64 {
	return g.queue.Dropped()
}

// Start restores persisted state, publishes the initial projections and schedules the recurring tasks
func (g *Game) Start(ctx context.Context) {
	if g.started {
		return
	}
	g.started = true

	g.restore(ctx)

	now := g.clock.Now()
	g.lastRate = g.state.Rate(now)
	g.push(events.EventCountChanged, &events.CountPayload{Count: g.state.Count()})
	g.push(events.EventRateChanged, &events.RatePayload{Rate: g.lastRate})
	g.pushProgress()

	g.rateTask = g.scheduler.Every("rate", g.cfg.RateInterval, g.recomputeRate)
	g.saveTask = g.scheduler.Every("autosave", g.cfg.AutosaveInterval, func(time.Time) {
		g.saveWithTimeout(context.Background())
	})

	g.router.DispatchAll()
}

func (g *Game) restore(ctx context.Context) {
	if g.store == nil {
		return
	}

	loadCtx, cancel := context.WithTimeout(ctx, g.cfg.SaveTimeout)
	defer cancel()

	snap, ok, err := g.store.Load(loadCtx)
	if err != nil {
		logrus.Warnf("failed to load saved state, starting fresh: %v", err)
		return
	}
	if !ok {
		logrus.Info("no saved state, starting fresh")
		return
	}

	g.state.Restore(snap)
	restored := g.state.Snapshot()
	logrus.WithFields(logrus.Fields{
		"count":     restored.ActivationCount,
		"milestone": restored.NextMilestoneIndex,
	}).Info("restored saved state")

	g.push(events.EventStateRestored, &events.SnapshotPayload{
		ActivationCount:    restored.ActivationCount,
		NextMilestoneIndex: restored.NextMilestoneIndex,
	})
}

// Activate counts one logical activation from source and publishes its effects
func (g *Game) Activate(source events.Source) ActivationResult {
	now := g.clock.Now()
	res := g.state.RecordActivation(now)

	g.push(events.EventActivation, &events.ActivationPayload{Source: source, Count: res.Count})
	g.push(events.EventCountChanged, &events.CountPayload{Count: res.Count})
	g.publishRate(now)
	g.pushProgress()
	g.pushAchievements(res.Achieved)

	g.router.DispatchAll()
	return res
}

// Bonus adds n to the count, non-positive values are rejected without state change
func (g *Game) Bonus(n int64) (ActivationResult, error) {
	res, err := g.state.ApplyBonus(n)
	if err != nil {
		logrus.Warnf("bonus rejected: %v", err)
		return res, err
	}
	g.pushBonus(n, res)
	g.router.DispatchAll()
	return res, nil
}

// SecretSequence applies the secret bonus and shows its achievement-style notification
func (g *Game) SecretSequence() ActivationResult {
	res, err := g.state.ApplyBonus(constants.SecretBonus)
	if err != nil {
		// SecretBonus is a positive constant
		panic(fmt.Errorf("secret bonus rejected: %w", err))
	}
	logrus.WithField("count", res.Count).Info("secret sequence entered")

	g.push(events.EventSecretSequence, nil)
	g.pushBonus(constants.SecretBonus, res)
	g.push(events.EventMilestoneAchieved, &events.MilestonePayload{Label: constants.SecretLabel})

	g.router.DispatchAll()
	return res
}

func (g *Game) pushBonus(n int64, res ActivationResult) {
	g.push(events.EventBonus, &events.BonusPayload{Amount: n, Count: res.Count})
	g.push(events.EventCountChanged, &events.CountPayload{Count: res.Count})
	g.pushProgress()
	g.pushAchievements(res.Achieved)
}

// Tick runs due recurring tasks, returns task runs performed
func (g *Game) Tick(now time.Time) int {
	n := g.scheduler.RunDue(now)
	if n > 0 {
		g.router.DispatchAll()
	}
	return n
}

// Save persists the current snapshot on demand
func (g *Game) Save(ctx context.Context) error {
	err := g.saveWithTimeout(ctx)
	g.router.DispatchAll()
	return err
}

// Shutdown cancels recurring tasks and writes a final snapshot
func (g *Game) Shutdown(ctx context.Context) error {
	g.scheduler.Stop()
	return g.Save(ctx)
}

func (g *Game) recomputeRate(now time.Time) {
	g.publishRate(now)
}

func (g *Game) publishRate(now time.Time) {
	rate := g.state.Rate(now)
	if rate == g.lastRate {
		return
	}
	g.lastRate = rate
	g.push(events.EventRateChanged, &events.RatePayload{Rate: rate})
}

func (g *Game) pushProgress() {
	g.push(events.EventProgressChanged, &events.ProgressPayload{
		Fraction: g.state.Progress(),
		Target:   g.state.NextTarget(),
	})
}

func (g *Game) pushAchievements(achieved []int64) {
	for _, threshold := range achieved {
		logrus.WithField("threshold", threshold).Info("milestone achieved")
		g.push(events.EventMilestoneAchieved, &events.MilestonePayload{
			Threshold: threshold,
			Label:     g.cfg.Labels[threshold],
		})
	}
}

func (g *Game) saveWithTimeout(ctx context.Context) error {
	if g.store == nil {
		return nil
	}

	saveCtx, cancel := context.WithTimeout(ctx, g.cfg.SaveTimeout)
	defer cancel()

	snap := g.state.Snapshot()
	if err := g.store.Save(saveCtx, snap); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logrus.Warnf("save timed out after %v", g.cfg.SaveTimeout)
		} else {
			logrus.Errorf("failed to save state: %v", err)
		}
		g.push(events.EventSaveFailed, &events.SaveFailedPayload{Err: err})
		return fmt.Errorf("failed to save state: %w", err)
	}

	logrus.WithField("count", snap.ActivationCount).Debug("state saved")
	g.push(events.EventStateSaved, &events.SnapshotPayload{
		ActivationCount:    snap.ActivationCount,
		NextMilestoneIndex: snap.NextMilestoneIndex,
	})
	return nil
}

func (g *Game) push(t events.EventType, payload any) {
	g.queue.Push(events.GameEvent{
		Type:      t,
		Payload:   payload,
		Timestamp: g.clock.Now(),
	})
}
