package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pump-clicker/audio"
	"github.com/lixenwraith/pump-clicker/config"
	"github.com/lixenwraith/pump-clicker/constants"
	"github.com/lixenwraith/pump-clicker/engine"
	"github.com/lixenwraith/pump-clicker/input"
	"github.com/lixenwraith/pump-clicker/render"
	"github.com/lixenwraith/pump-clicker/status"
	"github.com/lixenwraith/pump-clicker/store"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug logs to logs/pump-clicker.log")
	envFlag   = flag.String("env", "", "Path to a .env file (default: ./.env when present)")
	storeFlag = flag.String("store", "", "Store backend: file, redis, memory (overrides PUMP_STORE)")
)

// screen is package level so panic recovery can restore the terminal
var screen tcell.Screen

func main() {
	os.Exit(mainCode())
}

// mainCode runs the game and returns the process exit code
// Deferred cleanup (terminal, log file) completes before main exits
func mainCode() (code int) {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPUMP-CLICKER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *storeFlag != "" {
		cfg.Store = *storeFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -store: %v\n", err)
			return 1
		}
	}

	logFile := setupLogging(*debugFlag || cfg.Debug)
	return finish(logFile, run(cfg))
}

// finish logs a run error, closes the log file and returns the exit code
func finish(logFile *os.File, err error) int {
	code := 0
	if err != nil {
		logrus.Errorf("exiting: %v", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		code = 1
	}
	if logFile != nil {
		if cerr := logFile.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Failed to close log file: %v\n", cerr)
		}
	}
	return code
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.New(ctx, storeOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	defer st.Close()

	clock := engine.NewRealTimeProvider()
	game, err := engine.NewGame(gameConfig(cfg), clock, st)
	if err != nil {
		return err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen = s
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewRenderer(screen, clock, gameConfig(cfg).Thresholds)
	game.Register(engine.NewSinkHandler(renderer))
	game.Register(renderer)

	sounds := audio.NewSoundManager(audioConfig(cfg))
	if err := sounds.Initialize(); err != nil {
		if errors.Is(err, audio.ErrAudioDisabled) {
			logrus.Info("audio disabled")
		} else {
			logrus.Warnf("audio initialization failed: %v (continuing without audio)", err)
		}
	} else {
		defer sounds.Cleanup()
	}
	game.Register(audio.NewFeedbackHandler(sounds))

	metrics := status.NewRegistry(cfg.MetricsFile != "")
	metricsHandler := status.NewHandler(metrics)
	game.Register(metricsHandler)

	binding := input.NewTerminalBinding(input.NewDispatcher(game, nil), renderer.ButtonRect)

	game.Start(ctx)
	loop(ctx, game, renderer, binding, clock)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.SaveTimeout)
	defer cancel()
	if err := game.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("final save failed: %v", err)
	}

	metricsHandler.ObserveQueue(game)
	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logrus.Warnf("%v", err)
		}
	}
	logrus.WithField("count", game.State().Count()).Info("session ended")
	return nil
}

// loop is the single owner of game state: terminal events, frames and recurring tasks all run here
func loop(ctx context.Context, game *engine.Game, renderer *render.Renderer, binding *input.TerminalBinding, clock engine.TimeProvider) {
	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it reads the terminal directly
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			// Fini closes the event stream
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	taskTimer := time.NewTimer(time.Hour)
	defer taskTimer.Stop()
	resetTaskTimer := func() {
		taskTimer.Stop()
		if next, ok := game.Scheduler().NextDeadline(); ok {
			taskTimer.Reset(max(time.Until(next), 0))
		}
	}
	resetTaskTimer()

	renderer.Draw(clock.Now())

	for {
		select {
		case <-ctx.Done():
			logrus.Info("interrupted, shutting down")
			return

		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !binding.HandleEvent(ev) {
				return
			}

		case <-frameTicker.C:
			renderer.Draw(clock.Now())

		case <-taskTimer.C:
			game.Tick(clock.Now())
			resetTaskTimer()
		}
	}
}
