package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "2", "#", "*", "a"
//   - Key names: "Enter", "Backspace", "Space", "KP5"
//   - Bracket notation: "<KP5>", "<CR>", "<BS>", "<Space>", "<lt>"
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && len(spec) > 1 {
		if !strings.HasSuffix(spec, ">") {
			return Event{}, fmt.Errorf("%w: %q", ErrUnmatchedBracket, spec)
		}
		return parseBracketed(spec[1 : len(spec)-1])
	}

	// A lone space is a literal pause, not an empty spec.
	if spec == " " {
		return NewRuneEvent(' '), nil
	}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	return parseSingle(spec)
}

// parseBracketed parses the inside of "<...>".
func parseBracketed(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(inner) {
	case "none":
		return NewSpecialEvent(KeyNone), nil
	case "space":
		return NewRuneEvent(' '), nil
	case "lt":
		return NewRuneEvent('<'), nil
	case "gt":
		return NewRuneEvent('>'), nil
	}

	if k := KeyFromName(inner); k != KeyNone {
		return NewSpecialEvent(k), nil
	}

	runes := []rune(inner)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0]), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, inner)
}

// parseSingle parses a single character or key name.
func parseSingle(spec string) (Event, error) {
	runes := []rune(spec)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0]), nil
	}

	if strings.EqualFold(spec, "space") {
		return NewRuneEvent(' '), nil
	}
	if k := KeyFromName(spec); k != KeyNone {
		return NewSpecialEvent(k), nil
	}

	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
