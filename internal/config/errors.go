package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	ErrSettingNotFound  = errors.New("setting not found")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidPath      = errors.New("invalid setting path")
)

// ValidationError reports a setting whose value is out of range.
type ValidationError struct {
	Path  string
	Value any

	// Allowed lists the accepted values for enumerated settings.
	Allowed []string

	// Message is used when Allowed is empty.
	Message string
}

func (e *ValidationError) Error() string {
	reason := e.Message
	if len(e.Allowed) > 0 {
		reason = "must be one of " + strings.Join(e.Allowed, ", ")
	}
	return fmt.Sprintf("%s = %#v: %s", e.Path, e.Value, reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// TypeError reports a setting holding a value of the wrong type.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: got %s, want %s", e.Path, e.Actual, e.Expected)
}

func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func notFound(path string) error {
	return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
}
