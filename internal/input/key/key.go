package key

import (
	"fmt"
	"strings"
)

// Key represents a key on the keypad or keyboard.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace

	// Keypad keys
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPMultiply
	KeyKPEnter

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeySpace:
		return "Space"
	case KeyKPMultiply:
		return "KP*"
	case KeyKPEnter:
		return "KPEnter"
	case KeyRune:
		return "Rune"
	}
	if k.IsKeypadDigit() {
		return fmt.Sprintf("KP%d", k.Digit())
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsKeypadDigit returns true for KeyKP0 through KeyKP9.
func (k Key) IsKeypadDigit() bool {
	return k >= KeyKP0 && k <= KeyKP9
}

// IsKeypadKey returns true if this is a keypad key.
func (k Key) IsKeypadKey() bool {
	return k >= KeyKP0 && k <= KeyKPEnter
}

// Digit returns the digit of a keypad digit key, or -1.
func (k Key) Digit() int {
	if !k.IsKeypadDigit() {
		return -1
	}
	return int(k - KeyKP0)
}

// KeypadDigit returns the keypad key for digit d (0-9), or KeyNone.
func KeypadDigit(d int) Key {
	if d < 0 || d > 9 {
		return KeyNone
	}
	return KeyKP0 + Key(d)
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"none":       KeyNone,
	"escape":     KeyEscape,
	"esc":        KeyEscape,
	"enter":      KeyEnter,
	"return":     KeyEnter,
	"cr":         KeyEnter,
	"tab":        KeyTab,
	"backspace":  KeyBackspace,
	"bs":         KeyBackspace,
	"delete":     KeyDelete,
	"del":        KeyDelete,
	"space":      KeySpace,
	"kp0":        KeyKP0,
	"kp1":        KeyKP1,
	"kp2":        KeyKP2,
	"kp3":        KeyKP3,
	"kp4":        KeyKP4,
	"kp5":        KeyKP5,
	"kp6":        KeyKP6,
	"kp7":        KeyKP7,
	"kp8":        KeyKP8,
	"kp9":        KeyKP9,
	"kp*":        KeyKPMultiply,
	"kpmultiply": KeyKPMultiply,
	"kpenter":    KeyKPEnter,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}
