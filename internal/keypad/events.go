package keypad

import (
	"github.com/dshills/phonepad/internal/input/key"
)

// DecodeEvents decodes a series of key events. Each event contributes the
// token returned by key.Event.Token.
func DecodeEvents(events []key.Event) string {
	if len(events) == 0 {
		return ""
	}
	return DecodeSequence(key.NewSequenceFrom(events...))
}

// DecodeSequence decodes a key sequence. A nil sequence decodes to "".
func DecodeSequence(seq *key.Sequence) string {
	return Decode(seq.Tokens())
}
