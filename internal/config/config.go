package config

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dshills/phonepad/internal/config/loader"
)

// Layer identifies where a setting came from. Later layers win.
type Layer int

// Layers, lowest priority first.
const (
	LayerDefaults Layer = iota
	LayerFile
	LayerEnv
	LayerFlags
	numLayers
)

func (l Layer) String() string {
	switch l {
	case LayerDefaults:
		return "defaults"
	case LayerFile:
		return "file"
	case LayerEnv:
		return "env"
	case LayerFlags:
		return "flags"
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// Config is the layered phonepad configuration. It is safe for
// concurrent use.
type Config struct {
	mu     sync.RWMutex
	layers [numLayers]map[string]any

	path      string
	fs        loader.FileSystem
	envLoader loader.Loader
}

// Option configures a Config.
type Option func(*Config)

// WithFile sets the configuration file. A missing file is not an error.
func WithFile(path string) Option {
	return func(c *Config) { c.path = path }
}

// WithFileSystem sets the file system the config file is read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(c *Config) { c.fs = fs }
}

// WithEnvLoader replaces the PHONEPAD_* environment loader.
func WithEnvLoader(l loader.Loader) Option {
	return func(c *Config) { c.envLoader = l }
}

// New creates a Config holding only the built-in defaults until Load.
func New(opts ...Option) *Config {
	c := &Config{
		fs:        loader.DefaultFS(),
		envLoader: loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	c.layers[LayerDefaults] = defaultConfig()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the file and environment layers. Flags set earlier are kept.
func (c *Config) Load(_ context.Context) error {
	var file, env map[string]any
	var err error

	if c.path != "" {
		if file, err = loader.ForPath(c.fs, c.path).Load(); err != nil {
			return fmt.Errorf("loading config file: %w", err)
		}
	}
	if c.envLoader != nil {
		if env, err = c.envLoader.Load(); err != nil {
			return fmt.Errorf("loading environment: %w", err)
		}
	}

	c.mu.Lock()
	c.layers[LayerFile] = file
	c.layers[LayerEnv] = env
	c.mu.Unlock()
	return nil
}

// Get returns the merged value at a dot-separated path.
func (c *Config) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lookup(c.merged(), splitPath(path))
}

// GetString returns the string at path.
func (c *Config) GetString(path string) (string, error) {
	v, ok := c.Get(path)
	if !ok {
		return "", notFound(path)
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return s, nil
}

// GetInt returns the integer at path. Whole floats are accepted.
func (c *Config) GetInt(path string) (int, error) {
	v, ok := c.Get(path)
	if !ok {
		return 0, notFound(path)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &TypeError{Path: path, Expected: "int", Actual: typeName(v)}
}

// Set stores value at path in the flags layer.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.layers[LayerFlags] == nil {
		c.layers[LayerFlags] = make(map[string]any)
	}
	return assign(c.layers[LayerFlags], splitPath(path), value)
}

// Merged returns a deep copy of the merged configuration.
func (c *Config) Merged() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.merged()
}

// Source returns the highest layer that defines path, and false when no
// layer does.
func (c *Config) Source(path string) (Layer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := splitPath(path)
	for l := LayerFlags; l >= LayerDefaults; l-- {
		if _, ok := lookup(c.layers[l], parts); ok {
			return l, true
		}
	}
	return LayerDefaults, false
}

// merged must be called with c.mu held.
func (c *Config) merged() map[string]any {
	result := make(map[string]any)
	for _, layer := range c.layers {
		result = loader.DeepMerge(result, loader.Clone(layer))
	}
	return result
}

func defaultConfig() map[string]any {
	return map[string]any{
		"output":  map[string]any{"format": "text", "color": "auto"},
		"input":   map[string]any{"format": "line", "field": "keys"},
		"batch":   map[string]any{"workers": int64(0)},
		"logging": map[string]any{"level": "warn", "format": "text"},
	}
}

func lookup(m map[string]any, parts []string) (any, bool) {
	if len(parts) == 0 || m == nil {
		return nil, false
	}
	var cur any = m
	for _, part := range parts {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = table[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func assign(m map[string]any, parts []string, value any) error {
	if len(parts) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	for i, part := range parts[:len(parts)-1] {
		next, ok := m[part]
		if !ok {
			next = make(map[string]any)
			m[part] = next
		}
		table, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s is not a table", ErrInvalidPath, strings.Join(parts[:i+1], "."))
		}
		m = table
	}
	m[parts[len(parts)-1]] = value
	return nil
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '.' })
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "nil"
	case string:
		return "string"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	default:
		return fmt.Sprintf("%T", v)
	}
}
