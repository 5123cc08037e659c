package loader

import (
	"strings"
	"testing"
)

func newTestEnvLoader(env ...string) *EnvLoader {
	l := NewEnvLoader(DefaultEnvPrefix)
	l.lookup = func() []string { return env }
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	loader := newTestEnvLoader(
		"PHONEPAD_FORMAT=json",
		"PHONEPAD_WORKERS=3",
		"PHONEPAD_LOG_LEVEL=debug",
		"HOME=/root",
	)

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "output.format"); !ok || val != "json" {
		t.Errorf("output.format = %v, want 'json'", val)
	}
	if val, ok := getByPath(config, "batch.workers"); !ok || val != int64(3) {
		t.Errorf("batch.workers = %v (%T), want 3", val, val)
	}
	if val, ok := getByPath(config, "logging.level"); !ok || val != "debug" {
		t.Errorf("logging.level = %v, want 'debug'", val)
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variables should be ignored")
	}
}

func TestEnvLoader_MappedStringsStayStrings(t *testing.T) {
	loader := newTestEnvLoader("PHONEPAD_FIELD=yes", "PHONEPAD_WORKERS=lots")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, _ := getByPath(config, "input.field"); val != "yes" {
		t.Errorf("input.field = %v (%T), want \"yes\"", val, val)
	}
	if val, _ := getByPath(config, "batch.workers"); val != "lots" {
		t.Errorf("batch.workers = %v (%T), want \"lots\"", val, val)
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	loader := newTestEnvLoader("PHONEPAD_OUTPUT_COLOR=never")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := getByPath(config, "output.color"); !ok || val != "never" {
		t.Errorf("output.color = %v, want 'never'", val)
	}
}

func TestEnvLoader_LoadProcessEnvironment(t *testing.T) {
	t.Setenv("PHONEPAD_COLOR", "always")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := getByPath(config, "output.color"); !ok || val != "always" {
		t.Errorf("output.color = %v, want 'always'", val)
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	loader := newTestEnvLoader("PHONEPAD_KEYS=payload.keys")
	loader.AddMapping("PHONEPAD_KEYS", "input.field")

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if val, ok := getByPath(config, "input.field"); !ok || val != "payload.keys" {
		t.Errorf("input.field = %v, want 'payload.keys'", val)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader("PHONEPAD_")

	tests := []struct {
		env      string
		expected string
	}{
		{"PHONEPAD_OUTPUT_FORMAT", "output.format"},
		{"PHONEPAD_OUTPUT_COLOR_MODE", "output.colorMode"},
		{"PHONEPAD_SIMPLE", "simple"},
		{"PHONEPAD_BATCH_QUEUE_DEPTH", "batch.queueDepth"},
	}

	for _, tt := range tests {
		got := loader.envToPath(tt.env)
		if got != tt.expected {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.expected)
		}
	}
}

func TestEnvLoader_parseValue(t *testing.T) {
	loader := NewEnvLoader("PHONEPAD_")

	tests := []struct {
		input string
		want  any
	}{
		{"", ""},
		{"true", true},
		{"YES", true},
		{"off", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-4", int64(-4)},
		{"text", "text"},
		{"1.5", "1.5"},
	}

	for _, tt := range tests {
		if got := loader.parseValue(tt.input); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.input, got, got, tt.want, tt.want)
		}
	}
}

// getByPath reads a value from a nested map using a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	current := any(data)
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
