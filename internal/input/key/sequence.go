package key

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Sequence represents a series of key events forming a message.
type Sequence struct {
	// Events contains the key events in order.
	Events []Event
}

// NewSequence creates an empty key sequence.
func NewSequence() *Sequence {
	return &Sequence{Events: make([]Event, 0, 16)}
}

// NewSequenceFrom creates a sequence from the given events.
func NewSequenceFrom(events ...Event) *Sequence {
	return &Sequence{Events: events}
}

// Len returns the number of events in the sequence.
func (s *Sequence) Len() int {
	return len(s.Events)
}

// Add appends an event to the sequence.
func (s *Sequence) Add(event Event) {
	s.Events = append(s.Events, event)
}

// String returns a human-readable representation.
// Examples: "KP4 KP4 BS Enter"
func (s *Sequence) String() string {
	if len(s.Events) == 0 {
		return ""
	}

	parts := make([]string, len(s.Events))
	for i, e := range s.Events {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

// SpecString returns the sequence in the notation accepted by ParseSequence.
func (s *Sequence) SpecString() string {
	var sb strings.Builder
	for _, e := range s.Events {
		sb.WriteString(e.SpecString())
	}
	return sb.String()
}

// Tokens returns the keypad token string for the sequence.
func (s *Sequence) Tokens() string {
	if s == nil || len(s.Events) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(s.Events))
	for _, e := range s.Events {
		sb.WriteRune(e.Token())
	}
	return sb.String()
}

// Equals returns true if two sequences are identical.
func (s *Sequence) Equals(other *Sequence) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.Events) != len(other.Events) {
		return false
	}
	for i, e := range s.Events {
		if !e.Equals(other.Events[i]) {
			return false
		}
	}
	return true
}

// ParseSequence parses a key sequence string into a Sequence.
// Each "<...>" group is one key; every other character, including a
// space, is one key of its own.
// Examples: "44 33#", "<KP4><KP4><BS><CR>", "2<Space>2"
func ParseSequence(s string) (*Sequence, error) {
	seq := NewSequence()

	for i := 0; i < len(s); {
		if s[i] == '<' && i+1 < len(s) {
			end := strings.IndexByte(s[i:], '>')
			if end == -1 {
				return nil, fmt.Errorf("%w at offset %d", ErrUnmatchedBracket, i)
			}

			event, err := Parse(s[i : i+end+1])
			if err != nil {
				return nil, err
			}
			seq.Add(event)
			i += end + 1
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		seq.Add(NewRuneEvent(r))
		i += size
	}

	return seq, nil
}

// MustParseSequence parses a sequence string and panics on error.
// Use only for known-valid sequences in initialization code.
func MustParseSequence(s string) *Sequence {
	seq, err := ParseSequence(s)
	if err != nil {
		panic("invalid key sequence: " + s + ": " + err.Error())
	}
	return seq
}
