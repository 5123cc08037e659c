// Package loader reads phonepad configuration into nested maps.
//
// Files are TOML or YAML, picked by extension. Environment variables with
// the PHONEPAD_ prefix form a separate layer. Every loader returns
// map[string]any with int64 integers so layers merge uniformly.
package loader

import (
	"errors"
	"io/fs"
	"os"
)

// Loader produces one configuration layer. A missing source yields nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

// FileLoader is a Loader that can also read an explicit path.
type FileLoader interface {
	Loader
	LoadFrom(path string) (map[string]any, error)
}

// FileSystem reads whole files. Tests substitute an in-memory version.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the operating system.
type OSFS struct{}

// ReadFile implements FileSystem.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// ForPath returns a loader for path chosen by FormatFor.
func ForPath(fsys FileSystem, path string) FileLoader {
	return NewLoader(FormatFor(path), fsys, path)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
