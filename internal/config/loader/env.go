package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of framestate environment variables.
const DefaultEnvPrefix = "FRAMESTATE_"

// EnvLoader loads configuration from environment variables.
//
// FRAMESTATE_INPUT_DRAG_THRESHOLD maps to input.drag_threshold: the first
// segment after the prefix names the section, the rest the setting.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "FRAMESTATE_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		environ: os.Environ,
	}
}

// Load reads environment variables and returns a configuration map.
// Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		section, setting, ok := l.envToPath(name)
		if !ok {
			continue
		}
		setByPath(config, section, setting, parseValue(value))
	}

	return config, nil
}

// envToPath converts FRAMESTATE_FRAME_RATE to ("frame", "rate").
func (l *EnvLoader) envToPath(env string) (section, setting string, ok bool) {
	name := strings.TrimPrefix(env, l.prefix)
	section, setting, ok = strings.Cut(strings.ToLower(name), "_")
	if !ok || section == "" || setting == "" {
		return "", "", false
	}
	return section, setting, true
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only try float with a decimal point to avoid misinterpreting ints.
	if strings.ContainsAny(s, ".eE") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	return s
}

func setByPath(data map[string]any, section, setting string, value any) {
	sec, ok := data[section].(map[string]any)
	if !ok {
		sec = make(map[string]any)
		data[section] = sec
	}
	sec[setting] = value
}
