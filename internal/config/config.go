package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/dshills/framestate/internal/config/loader"
	"github.com/dshills/framestate/internal/logging"
)

// Frame rate limits in frames per second.
const (
	MinFrameRate = 1
	MaxFrameRate = 1000
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = loader.DefaultEnvPrefix

// Config is the complete framestate configuration.
type Config struct {
	Input   InputConfig
	Frame   FrameConfig
	Logging LoggingConfig
	Script  ScriptConfig
	Window  WindowConfig
}

// InputConfig configures the input state store and event source.
type InputConfig struct {
	// DragThreshold is the distance in logical units the pointer must
	// travel from the press position before a drag starts.
	DragThreshold float64

	// TerminalKeyRelease synthesizes a key release right after each key
	// press. Terminals report no key-up.
	TerminalKeyRelease bool
}

// FrameConfig configures the frame loop.
type FrameConfig struct {
	// Rate is the number of frames per second.
	Rate int
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string
	// File is the log file path. Empty means no log output.
	File string
}

// ScriptConfig configures Lua frame hooks.
type ScriptConfig struct {
	// Path is the Lua file to load. Empty disables scripting.
	Path string
}

// WindowConfig configures window metrics the event source cannot report.
type WindowConfig struct {
	DPIFactor float64
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			DragThreshold:      2.0,
			TerminalKeyRelease: true,
		},
		Frame: FrameConfig{
			Rate: 60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Window: WindowConfig{
			DPIFactor: 1.0,
		},
	}
}

// Load returns the defaults overlaid with the file at path and validates
// the result. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	return LoadWithFS(loader.DefaultFS(), path)
}

// LoadWithFS is Load with a custom file system.
func LoadWithFS(fsys loader.FileSystem, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	l, err := loader.ForFile(fsys, path)
	if err != nil {
		return nil, err
	}
	data, err := l.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Merge(data); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables named
// prefix + SECTION_SETTING, e.g. FRAMESTATE_FRAME_RATE. Variables that name
// no known setting are ignored.
func (c *Config) ApplyEnv(prefix string) error {
	data, err := loader.NewEnvLoader(prefix).Load()
	if err != nil {
		return err
	}
	return c.merge(data, false)
}

// Merge overrides the settings present in data, a map of section to
// setting to value as produced by the loaders. Unknown settings and values
// of the wrong type are errors.
func (c *Config) Merge(data map[string]any) error {
	return c.merge(data, true)
}

func (c *Config) merge(data map[string]any, strict bool) error {
	// Sorted so the first reported error is deterministic.
	sections := make([]string, 0, len(data))
	for name := range data {
		sections = append(sections, name)
	}
	sort.Strings(sections)

	for _, name := range sections {
		values, ok := data[name].(map[string]any)
		if !ok {
			if !strict {
				continue
			}
			return &TypeError{Field: name, Expected: "table", Actual: fmt.Sprintf("%T", data[name])}
		}

		keys := make([]string, 0, len(values))
		for k := range values {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			field := name + "." + k
			err := c.set(field, values[k])
			if errors.Is(err, ErrUnknownSetting) && !strict {
				continue
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// set assigns one setting by its dotted path.
func (c *Config) set(field string, v any) error {
	var err error
	switch field {
	case "input.drag_threshold":
		c.Input.DragThreshold, err = toFloat(field, v)
	case "input.terminal_key_release":
		c.Input.TerminalKeyRelease, err = toBool(field, v)
	case "frame.rate":
		c.Frame.Rate, err = toInt(field, v)
	case "logging.level":
		c.Logging.Level, err = toString(field, v)
	case "logging.file":
		c.Logging.File, err = toString(field, v)
	case "script.path":
		c.Script.Path, err = toString(field, v)
	case "window.dpi_factor":
		c.Window.DPIFactor, err = toFloat(field, v)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSetting, field)
	}
	return err
}

// Validate checks every setting and returns a *ValidationError for the
// first invalid one.
func (c *Config) Validate() error {
	if math.IsNaN(c.Input.DragThreshold) || c.Input.DragThreshold < 0 {
		return &ValidationError{Field: "input.drag_threshold", Message: "must be >= 0", Value: c.Input.DragThreshold}
	}
	if c.Frame.Rate < MinFrameRate || c.Frame.Rate > MaxFrameRate {
		return &ValidationError{
			Field:   "frame.rate",
			Message: fmt.Sprintf("must be between %d and %d", MinFrameRate, MaxFrameRate),
			Value:   c.Frame.Rate,
		}
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return &ValidationError{Field: "logging.level", Message: "must be one of debug, info, warn, error", Value: c.Logging.Level}
	}
	if math.IsNaN(c.Window.DPIFactor) || c.Window.DPIFactor <= 0 {
		return &ValidationError{Field: "window.dpi_factor", Message: "must be > 0", Value: c.Window.DPIFactor}
	}
	return nil
}

func toFloat(field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, nil
		}
	}
	return 0, &TypeError{Field: field, Expected: "float", Actual: fmt.Sprintf("%T", v)}
}

func toInt(field string, v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, nil
		}
	}
	return 0, &TypeError{Field: field, Expected: "integer", Actual: fmt.Sprintf("%T", v)}
}

func toBool(field string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed, nil
		}
	}
	return false, &TypeError{Field: field, Expected: "bool", Actual: fmt.Sprintf("%T", v)}
}

func toString(field string, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int64, float64, bool:
		// Environment values arrive pre-parsed.
		return fmt.Sprint(s), nil
	}
	return "", &TypeError{Field: field, Expected: "string", Actual: fmt.Sprintf("%T", v)}
}
