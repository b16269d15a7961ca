// Package main is the entry point for framestate, a terminal input
// inspector built on the per-frame input state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/framestate/internal/app"
	"github.com/dshills/framestate/internal/backend"
	"github.com/dshills/framestate/internal/config"
	"github.com/dshills/framestate/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds the command line. Only flags given explicitly override
// the configuration file.
type cliOptions struct {
	configPath string
	logLevel   string
	logFile    string
	scriptPath string
	fps        int

	set map[string]bool
}

func main() {
	os.Exit(run())
}

func run() int {
	cli := parseFlags()

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	term, err := backend.NewTerminal(backend.WithKeyRelease(cfg.Input.TerminalKeyRelease))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: cli.configPath,
		EnvPrefix:  config.EnvPrefix,
		Overrides:  cli.apply,
		Backend:    term,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Signals become close requests so the last frame still runs.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	go func() {
		for range signals {
			term.PostClose()
		}
	}()

	if err := application.Run(context.Background()); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// loadConfig layers defaults, the file, the environment and the command
// line, in that order.
func loadConfig(cli cliOptions) (*config.Config, error) {
	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(config.EnvPrefix); err != nil {
		return nil, err
	}
	cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// apply overrides cfg with the flags given on the command line.
func (cli cliOptions) apply(cfg *config.Config) {
	if cli.set["log-level"] {
		cfg.Logging.Level = cli.logLevel
	}
	if cli.set["log-file"] {
		cfg.Logging.File = cli.logFile
	}
	if cli.set["script"] {
		cfg.Script.Path = cli.scriptPath
	}
	if cli.set["fps"] {
		cfg.Frame.Rate = cli.fps
	}
}

// newLogger writes to the configured log file. The terminal owns the
// screen while running, so without a file logs are discarded.
func newLogger(cfg *config.Config) (*logging.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Output: out,
		Prefix: "framestate",
	})
	return logger, closeFn, nil
}

func parseFlags() cliOptions {
	cli := cliOptions{set: make(map[string]bool)}
	var showVersion bool
	var showHelp bool

	flag.StringVar(&cli.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&cli.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&cli.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&cli.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&cli.scriptPath, "script", "", "Lua script defining on_frame(n)")
	flag.IntVar(&cli.fps, "fps", 60, "Frames per second")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "framestate - per-frame keyboard and mouse state inspector\n\n")
		fmt.Fprintf(os.Stderr, "Usage: framestate [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSettings may also be given as %sSECTION_SETTING environment variables,\n", config.EnvPrefix)
		fmt.Fprintf(os.Stderr, "e.g. %sINPUT_DRAG_THRESHOLD=4. Flags take precedence.\n", config.EnvPrefix)
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  framestate                          Inspect input with defaults\n")
		fmt.Fprintf(os.Stderr, "  framestate -c framestate.toml       Use (and watch) a config file\n")
		fmt.Fprintf(os.Stderr, "  framestate -script hooks.lua        Run on_frame from a script\n")
		fmt.Fprintf(os.Stderr, "  framestate -log-file fs.log -log-level debug\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("framestate %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	flag.Visit(func(f *flag.Flag) {
		cli.set[f.Name] = true
	})

	if cli.set["log-level"] && !logging.ValidLevel(cli.logLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", cli.logLevel)
		os.Exit(1)
	}

	return cli
}
