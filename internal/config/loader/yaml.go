package loader

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAML configuration files. Integers decode as int64 to match TOML.
var YAML = Format{
	Name:       "yaml",
	Extensions: []string{".yaml", ".yml"},
	decode: func(data []byte) (map[string]any, error) {
		var config map[string]any
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
		return normalize(config), nil
	},
	position: yamlLine,
}

// NewYAMLLoader creates a YAML loader reading from the OS file system.
func NewYAMLLoader(path string) *FormatLoader {
	return NewLoader(YAML, nil, path)
}

// NewYAMLLoaderWithFS creates a YAML loader with a custom file system.
func NewYAMLLoaderWithFS(fs FileSystem, path string) *FormatLoader {
	return NewLoader(YAML, fs, path)
}

// yamlLine extracts the line from messages like "yaml: line 3: ...".
func yamlLine(err error) (int, int) {
	msg := err.Error()
	if te, ok := errorAs[*yaml.TypeError](err); ok && len(te.Errors) > 0 {
		msg = "yaml: " + strings.TrimPrefix(te.Errors[0], "yaml: ")
	}
	var line int
	if _, scanErr := fmt.Sscanf(msg, "yaml: line %d:", &line); scanErr != nil {
		return 0, 0
	}
	return line, 0
}

func normalize(m map[string]any) map[string]any {
	for k, v := range m {
		m[k] = normalizeValue(v)
	}
	return m
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case int:
		return int64(val)
	case map[string]any:
		return normalize(val)
	case []any:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	default:
		return v
	}
}
