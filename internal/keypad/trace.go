package keypad

import "fmt"

// KindEnd marks the final flush when input runs out without a terminator.
// Classify never returns it; it only appears in a Step.
const KindEnd TokenKind = 255

// Step describes what the decoder did with one input character.
type Step struct {
	// Index is the byte offset of Token in the input. For KindEnd it is
	// the input length.
	Index int

	// Token is the input byte. Zero for KindEnd.
	Token byte

	// Kind is how Token was classified.
	Kind TokenKind

	// Committed is the letter appended to the output by this step, or 0.
	Committed byte

	// Deleted reports whether a backspace removed a letter.
	Deleted bool

	// Len is the output length after the step.
	Len int
}

// String returns a compact description such as `2 digit +C len=3`.
func (s Step) String() string {
	tok := "EOF"
	if s.Kind != KindEnd {
		tok = fmt.Sprintf("%q", s.Token)
	}
	desc := fmt.Sprintf("%s %s", tok, s.Kind)
	if s.Committed != 0 {
		desc += fmt.Sprintf(" +%c", s.Committed)
	}
	if s.Deleted {
		desc += " -1"
	}
	return fmt.Sprintf("%s len=%d", desc, s.Len)
}

// DecodeTrace decodes input exactly like Decode and reports every step to
// fn. Steps after a terminator are not reported. fn may be nil.
func DecodeTrace(input string, fn func(Step)) string {
	return scan(input, fn)
}
