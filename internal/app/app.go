// Package app runs the framestate frame loop. It wires the event source,
// the input state, configuration reloads and the frame hooks together.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/framestate/internal/backend"
	"github.com/dshills/framestate/internal/config"
	"github.com/dshills/framestate/internal/input"
	"github.com/dshills/framestate/internal/logging"
	"github.com/dshills/framestate/internal/script"
)

// Application owns the input state and drives it one frame at a time.
//
// Each frame ingests the events queued since the previous frame in
// arrival order, runs the frame hooks, then ends the frame. The
// Application is driven by a single goroutine: Run, or Frame in tests.
type Application struct {
	opts    Options
	cfg     *config.Config
	backend backend.Backend
	logger  *logging.Logger
	session string

	state   *input.State
	control *Control
	hooks   *HookManager
	stats   *Stats
	script  *script.Runtime

	pending []input.Event
	frame   uint64

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config is the initial configuration. Nil uses config.Default.
	Config *config.Config

	// ConfigPath is watched for changes when set.
	ConfigPath string

	// EnvPrefix is applied to reloaded configurations. Empty skips the
	// environment.
	EnvPrefix string

	// Overrides is applied to every reloaded configuration, so values
	// set on the command line survive a reload.
	Overrides func(*config.Config)

	// Backend is the event source and display. Required.
	Backend backend.Backend

	// Logger defaults to logging.Null.
	Logger *logging.Logger
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	if opts.Backend == nil {
		return nil, &InitError{Component: "backend", Err: errors.New("no backend")}
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Null
	}
	session := uuid.New().String()

	app := &Application{
		opts:    opts,
		cfg:     cfg,
		backend: opts.Backend,
		logger:  logger.WithField("session", session),
		session: session,
		control: &Control{},
		hooks:   NewHookManager(),
		stats:   NewStats(),
	}

	app.state = input.New(
		input.WithDragThreshold(cfg.Input.DragThreshold),
		input.WithDPIFactor(cfg.Window.DPIFactor),
		input.WithTerminator(app.control),
		input.WithLogger(app.logger.WithComponent("input")),
	)

	app.hooks.Register("stats", HookPriorityHighest, app.stats)

	if cfg.Script.Path != "" {
		rt := script.New(app.state, script.WithLogger(app.logger.WithComponent("script")))
		if err := rt.LoadFile(cfg.Script.Path); err != nil {
			rt.Close()
			return nil, &InitError{Component: "script", Err: err}
		}
		app.script = rt
		if rt.HasFrameHook() {
			app.hooks.Register("script", HookPriorityNormal, FrameHookFunc(func(n uint64, _ *input.State) error {
				return rt.Frame(n)
			}))
		}
	}

	app.hooks.Register("display", HookPriorityLowest, NewDisplay(app.backend, session))

	return app, nil
}

// State returns the input state.
func (app *Application) State() *input.State {
	return app.state
}

// Control returns the termination control wired to the input state.
func (app *Application) Control() *Control {
	return app.control
}

// Hooks returns the frame hook manager.
func (app *Application) Hooks() *HookManager {
	return app.hooks
}

// Stats returns the frame loop statistics.
func (app *Application) Stats() *Stats {
	return app.stats
}

// Session returns the unique identifier of this run.
func (app *Application) Session() string {
	return app.session
}

// Config returns the configuration in effect.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Enqueue queues events for the next frame.
func (app *Application) Enqueue(events ...input.Event) {
	app.pending = append(app.pending, events...)
}

// Frame runs one frame: queued events are ingested in arrival order, the
// hooks run, and the one-shot signals are cleared. Frame returns ErrQuit
// once termination has been requested.
func (app *Application) Frame() error {
	start := time.Now()
	app.frame++

	app.state.DispatchAll(app.pending)
	app.stats.RecordEvents(len(app.pending))
	clear(app.pending)
	app.pending = app.pending[:0]

	for _, err := range app.hooks.Run(app.frame, app.state) {
		app.stats.RecordHookError()
		var herr *HookError
		if errors.As(err, &herr) && herr.Disabled {
			app.logger.Error("frame hook %s disabled after repeated failures: %v", herr.Name, herr.Err)
			continue
		}
		app.logger.Warn("%v", err)
	}

	app.state.EndFrame()
	app.stats.RecordFrame(time.Since(start))

	if app.control.Requested() {
		return ErrQuit
	}
	return nil
}

// Run starts the backend and the frame loop. It blocks until termination
// is requested (ErrQuit), the event source closes (ErrSourceClosed) or
// ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.state.HandleResize(app.backend.Size())

	var updates <-chan *config.Config
	var reloadErrs <-chan error
	if app.opts.ConfigPath != "" {
		r, rerr := config.NewReloader(app.opts.ConfigPath, app.opts.EnvPrefix)
		if rerr != nil {
			app.logger.Warn("config reload disabled: %v", rerr)
		} else {
			defer r.Close()
			updates, reloadErrs = r.Updates(), r.Errors()
		}
	}

	interval := frameInterval(app.cfg.Frame.Rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	app.logger.Info("frame loop started at %d fps", app.cfg.Frame.Rate)
	defer func() {
		app.logger.Info("frame loop stopped: %s", app.stats.Snapshot())
	}()

	events := app.backend.Events()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				if err := app.Frame(); err != nil {
					return err
				}
				return ErrSourceClosed
			}
			app.Enqueue(ev)

		case cfg := <-updates:
			if app.applyConfig(cfg) {
				interval = frameInterval(app.cfg.Frame.Rate)
				ticker.Reset(interval)
			}

		case rerr := <-reloadErrs:
			app.logger.Warn("config reload failed, keeping previous settings: %v", rerr)

		case <-ticker.C:
			start := time.Now()
			if err := app.Frame(); err != nil {
				return err
			}
			if time.Since(start) > interval {
				app.stats.RecordDroppedFrame()
			}
		}
	}
}

// Close releases the script runtime.
func (app *Application) Close() error {
	var errs ErrorList
	if app.script != nil {
		errs.Add(app.script.Close())
	}
	return errs.AsError()
}

// applyConfig switches to a reloaded configuration. It reports whether
// the frame rate changed.
func (app *Application) applyConfig(cfg *config.Config) bool {
	if app.opts.Overrides != nil {
		app.opts.Overrides(cfg)
	}
	if err := cfg.Validate(); err != nil {
		app.logger.Warn("reloaded config rejected: %v", err)
		return false
	}

	prev := app.cfg
	app.cfg = cfg

	app.state.SetDragThreshold(cfg.Input.DragThreshold)
	app.logger.SetLevel(logging.ParseLevel(cfg.Logging.Level))
	if cfg.Window.DPIFactor != prev.Window.DPIFactor {
		app.state.HandleDPIChange(cfg.Window.DPIFactor)
	}
	if cfg.Script.Path != prev.Script.Path || cfg.Input.TerminalKeyRelease != prev.Input.TerminalKeyRelease {
		app.logger.Info("script and key release settings take effect on restart")
	}

	app.logger.Info("config reloaded: %s", describe(cfg))
	return cfg.Frame.Rate != prev.Frame.Rate
}

func describe(cfg *config.Config) string {
	return fmt.Sprintf("drag_threshold=%g rate=%d level=%s dpi=%g",
		cfg.Input.DragThreshold, cfg.Frame.Rate, cfg.Logging.Level, cfg.Window.DPIFactor)
}

func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = config.Default().Frame.Rate
	}
	return time.Second / time.Duration(rate)
}
