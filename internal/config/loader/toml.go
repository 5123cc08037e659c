package loader

import (
	"github.com/pelletier/go-toml/v2"
)

// TOML is the default configuration syntax.
var TOML = Format{
	Name:       "toml",
	Extensions: []string{".toml"},
	decode: func(data []byte) (map[string]any, error) {
		var config map[string]any
		err := toml.Unmarshal(data, &config)
		return config, err
	},
	position: func(err error) (int, int) {
		if derr, ok := errorAs[*toml.DecodeError](err); ok {
			return derr.Position()
		}
		return 0, 0
	},
}

// NewTOMLLoader creates a TOML loader reading from the OS file system.
func NewTOMLLoader(path string) *FormatLoader {
	return NewLoader(TOML, nil, path)
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *FormatLoader {
	return NewLoader(TOML, fs, path)
}
