package loader

import (
	"os"
	"strconv"
	"strings"
)

// DefaultEnvPrefix is the prefix of environment variables read by default.
const DefaultEnvPrefix = "PHONEPAD_"

// envVar binds a variable to a config path. Numeric variables parse as
// int64; others stay strings so a field named "yes" is not a bool.
type envVar struct {
	path    string
	numeric bool
}

// EnvLoader loads configuration from environment variables.
//
// Known variables (PHONEPAD_FORMAT, PHONEPAD_WORKERS, ...) map to fixed
// paths. Any other prefixed variable maps by name:
// PHONEPAD_BATCH_QUEUE_DEPTH becomes batch.queueDepth.
type EnvLoader struct {
	prefix string
	vars   map[string]envVar
	lookup func() []string
}

// NewEnvLoader creates a loader for variables starting with prefix.
// The prefix includes the trailing underscore.
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix: prefix,
		vars: map[string]envVar{
			prefix + "FORMAT":       {path: "output.format"},
			prefix + "COLOR":        {path: "output.color"},
			prefix + "INPUT_FORMAT": {path: "input.format"},
			prefix + "FIELD":        {path: "input.field"},
			prefix + "WORKERS":      {path: "batch.workers", numeric: true},
			prefix + "LOG_LEVEL":    {path: "logging.level"},
			prefix + "LOG_FORMAT":   {path: "logging.format"},
		},
		lookup: os.Environ,
	}
}

// AddMapping maps name to a string setting at path.
func (l *EnvLoader) AddMapping(name, path string) {
	l.vars[name] = envVar{path: path}
}

// Load reads the environment. Empty values are kept, not treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, entry := range l.lookup() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		v, known := l.vars[name]
		switch {
		case !known:
			setByPath(config, l.envToPath(name), l.parseValue(value))
		case v.numeric:
			if n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err == nil {
				setByPath(config, v.path, n)
			} else {
				// Left as a string so validation reports the type.
				setByPath(config, v.path, value)
			}
		default:
			setByPath(config, v.path, value)
		}
	}

	return config, nil
}

func (l *EnvLoader) envToPath(name string) string {
	parts := strings.Split(strings.TrimPrefix(name, l.prefix), "_")
	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	var sb strings.Builder
	sb.WriteString(section)
	sb.WriteByte('.')
	sb.WriteString(strings.ToLower(parts[1]))
	for _, part := range parts[2:] {
		if part == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(part[:1]))
		sb.WriteString(strings.ToLower(part[1:]))
	}
	return sb.String()
}

// parseValue guesses a type for unmapped variables. Digits stay numbers:
// "1" is an int, not true.
func (l *EnvLoader) parseValue(s string) any {
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	return s
}

func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
