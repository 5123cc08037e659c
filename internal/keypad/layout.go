package keypad

// Control tokens.
const (
	// Terminator commits the pending key and stops decoding.
	Terminator = '#'

	// Backspace deletes the most recently committed character.
	Backspace = '*'
)

// layout maps each digit to the letters its key cycles through, in press order.
var layout = [10]string{
	" ",    // 0
	"&'(",  // 1
	"ABC",  // 2
	"DEF",  // 3
	"GHI",  // 4
	"JKL",  // 5
	"MNO",  // 6
	"PQRS", // 7
	"TUV",  // 8
	"WXYZ", // 9
}

// Layout returns a copy of the keypad layout indexed by digit.
func Layout() [10]string {
	return layout
}

// Letters returns the letters assigned to digit d, or "" if d is not 0-9.
func Letters(d int) string {
	if d < 0 || d >= len(layout) {
		return ""
	}
	return layout[d]
}

// TokenKind classifies a single input character.
type TokenKind uint8

const (
	// KindSeparator is any character that is not a digit or control token.
	KindSeparator TokenKind = iota
	// KindDigit is '0' through '9'.
	KindDigit
	// KindTerminator is the send key.
	KindTerminator
	// KindBackspace is the delete key.
	KindBackspace
)

// String returns a human-readable name for the kind.
func (k TokenKind) String() string {
	switch k {
	case KindDigit:
		return "digit"
	case KindTerminator:
		return "terminator"
	case KindBackspace:
		return "backspace"
	case KindEnd:
		return "end"
	default:
		return "separator"
	}
}

// Classify reports how the decoder treats c.
func Classify(c rune) TokenKind {
	switch {
	case c >= '0' && c <= '9':
		return KindDigit
	case c == Terminator:
		return KindTerminator
	case c == Backspace:
		return KindBackspace
	default:
		return KindSeparator
	}
}
