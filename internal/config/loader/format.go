package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
)

// Format is a configuration file syntax.
type Format struct {
	// Name is a short lowercase identifier such as "toml".
	Name string

	// Extensions lists the file extensions, with dot, that select this format.
	Extensions []string

	decode   func(data []byte) (map[string]any, error)
	position func(err error) (line, column int)
}

// Formats lists every supported syntax. The first entry is the fallback
// for unknown extensions.
var Formats = []Format{TOML, YAML}

// FormatFor picks the format for path by its extension.
func FormatFor(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range Formats {
		if slices.Contains(f.Extensions, ext) {
			return f
		}
	}
	return Formats[0]
}

// FormatLoader reads configuration written in a single Format.
type FormatLoader struct {
	fs     FileSystem
	path   string
	format Format
}

// NewLoader creates a loader for path. A nil fsys reads from the OS.
func NewLoader(format Format, fsys FileSystem, path string) *FormatLoader {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &FormatLoader{fs: fsys, path: path, format: format}
}

// Format returns the syntax this loader parses.
func (l *FormatLoader) Format() Format {
	return l.format
}

// Load reads configuration from the configured path.
func (l *FormatLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads configuration from path. A missing file yields nil, nil.
func (l *FormatLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return l.parse(path, data)
}

// LoadFromReader reads configuration from r.
func (l *FormatLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return l.parse("<reader>", data)
}

func (l *FormatLoader) parse(source string, data []byte) (map[string]any, error) {
	config, err := l.format.decode(data)
	if err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		if l.format.position != nil {
			perr.Line, perr.Column = l.format.position(err)
		}
		return nil, perr
	}
	if config == nil {
		config = map[string]any{}
	}
	return config, nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	default:
		return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// errorAs adapts errors.As for the position helpers.
func errorAs[E error](err error) (E, bool) {
	var target E
	ok := errors.As(err, &target)
	return target, ok
}
