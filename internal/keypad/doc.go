// Package keypad decodes multi-tap numeric keypad input into text.
//
// Old mobile phones entered letters by pressing a digit key repeatedly:
// one press of 2 gives A, two give B, three give C and a fourth wraps
// back to A. This package turns such key-press strings into the text
// they spell.
//
// # Tokens
//
//   - '0'..'9': a key press. Consecutive presses of the same digit cycle
//     through that key's letters.
//   - '#': send. Commits the pending key and ends decoding; anything after
//     it is ignored.
//   - '*': backspace. Commits the pending key, then deletes the last
//     character of the output (a no-op on empty output).
//   - anything else: a pause. Commits the pending key so that the next
//     press of the same digit starts a new letter ("2 2" is "AA").
//
// # Example
//
//	keypad.Decode("4433555 555666#") // "HELLO"
//	keypad.Decode("8 88777444666*664#") // "TURING"
//
// Decoding is a single pass over the input and never fails. The keypad
// layout is a package-level constant, so Decode is safe for concurrent use.
package keypad
