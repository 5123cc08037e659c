// Package key provides key event types and parsing for keypad input.
//
// This package defines the types used to describe presses on a phone
// keypad before they are decoded into text:
//
//   - Key: Identifies a key (keypad digits, control keys, or runes)
//   - Event: A single key press with a timestamp
//   - Sequence: A series of key events forming a message
//
// # Key Specifications
//
// Key specifications can be written as:
//
//   - Simple keys: "2", "#", "*", " "
//   - Key names: "Enter", "Backspace", "Space", "KP5"
//   - Bracket notation: "<KP5>", "<BS>", "<CR>", "<KPEnter>", "<Space>"
//
// # Keypad Tokens
//
// Every event maps to exactly one keypad token (see Event.Token): digits
// to '0'-'9', delete keys to '*', enter keys to '#', and everything else
// to a pause.
package key
