package config

import (
	"errors"
	"slices"
	"strings"
)

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// Allowed values.
var (
	OutputFormats = []string{"text", "pretty", "json"}
	ColorModes    = []string{"auto", "always", "never"}
	InputFormats  = []string{"line", "jsonl"}
	LogLevels     = []string{"debug", "info", "warn", "error"}
	LogFormats    = []string{"text", "json"}
)

// OutputConfig controls how decoded results are printed.
type OutputConfig struct {
	// Format is one of OutputFormats.
	Format string

	// Color is one of ColorModes.
	Color string
}

// InputConfig controls how batch input is read.
type InputConfig struct {
	// Format is "line" (one input per line) or "jsonl".
	Format string

	// Field is the gjson path of the key string in each JSON Lines record.
	Field string
}

// BatchConfig controls concurrent decoding.
type BatchConfig struct {
	// Workers bounds concurrent decodes. Zero means GOMAXPROCS.
	Workers int
}

// LoggingConfig controls the diagnostic logger.
type LoggingConfig struct {
	Level  string
	Format string
}

// Output returns the output section.
func (c *Config) Output() OutputConfig {
	return OutputConfig{
		Format: c.stringOr("output.format", "text"),
		Color:  c.stringOr("output.color", "auto"),
	}
}

// Input returns the input section.
func (c *Config) Input() InputConfig {
	field, err := c.GetString("input.field")
	if err != nil || field == "" {
		field = "keys"
	}
	return InputConfig{
		Format: c.stringOr("input.format", "line"),
		Field:  field,
	}
}

// Batch returns the batch section.
func (c *Config) Batch() BatchConfig {
	workers, err := c.GetInt("batch.workers")
	if err != nil {
		workers = 0
	}
	return BatchConfig{Workers: workers}
}

// Logging returns the logging section.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level:  c.stringOr("logging.level", "warn"),
		Format: c.stringOr("logging.format", "text"),
	}
}

// Validate checks every known setting and returns all problems joined.
// Each problem wraps ErrValidationFailed or ErrTypeMismatch.
func (c *Config) Validate() error {
	var errs []error

	enums := []struct {
		path    string
		allowed []string
	}{
		{"output.format", OutputFormats},
		{"output.color", ColorModes},
		{"input.format", InputFormats},
		{"logging.level", LogLevels},
		{"logging.format", LogFormats},
	}
	for _, e := range enums {
		v, err := c.GetString(e.path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !slices.Contains(e.allowed, strings.ToLower(v)) {
			errs = append(errs, &ValidationError{Path: e.path, Value: v, Allowed: e.allowed})
		}
	}

	if field, err := c.GetString("input.field"); err != nil {
		errs = append(errs, err)
	} else if strings.TrimSpace(field) == "" {
		errs = append(errs, &ValidationError{Path: "input.field", Message: "must not be empty", Value: field})
	}

	if workers, err := c.GetInt("batch.workers"); err != nil {
		errs = append(errs, err)
	} else if workers < 0 {
		errs = append(errs, &ValidationError{Path: "batch.workers", Message: "must not be negative", Value: workers})
	}

	return errors.Join(errs...)
}

func (c *Config) stringOr(path, def string) string {
	s, err := c.GetString(path)
	if err != nil {
		return def
	}
	return strings.ToLower(s)
}
