package key

import (
	"fmt"
	"time"
	"unicode"
)

// Keypad tokens produced by Event.Token.
const (
	TokenBackspace = '*'
	TokenSend      = '#'
	TokenPause     = ' '
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key) Event {
	return Event{
		Key:       key,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsSpecial returns true if this is a special (non-character) key.
func (e Event) IsSpecial() bool {
	return e.Key.IsSpecial()
}

// Token returns the keypad token this event stands for.
// Rune events yield their rune unchanged.
func (e Event) Token() rune {
	if e.IsRune() {
		return e.Rune
	}
	if e.Key.IsKeypadDigit() {
		return rune('0' + e.Key.Digit())
	}
	switch e.Key {
	case KeyKPMultiply, KeyBackspace, KeyDelete:
		return TokenBackspace
	case KeyKPEnter, KeyEnter:
		return TokenSend
	default:
		return TokenPause
	}
}

// String returns a canonical string representation.
// Examples: "2", "Space", "KP5", "BS", "Enter"
func (e Event) String() string {
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			return "Space"
		}
		return string(e.Rune)
	case KeyEscape:
		return "Esc"
	case KeyBackspace:
		return "BS"
	case KeyDelete:
		return "Del"
	default:
		return e.Key.String()
	}
}

// SpecString returns the bracket notation accepted by Parse.
// Examples: "2", "<Space>", "<KP5>", "<BS>", "<CR>"
func (e Event) SpecString() string {
	if e.IsRune() {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}
	switch e.Key {
	case KeyEnter:
		return "<CR>"
	default:
		return "<" + e.String() + ">"
	}
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared. KeySpace and a ' ' rune are the same key.
func (e Event) Equals(other Event) bool {
	a, b := e.canonical(), other.canonical()
	return a.Key == b.Key && a.Rune == b.Rune
}

func (e Event) canonical() Event {
	if e.Key == KeyRune && e.Rune == ' ' {
		return Event{Key: KeySpace}
	}
	return Event{Key: e.Key, Rune: e.Rune}
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q}", e.Key.String(), e.Rune)
}
