package keypad

// initialBufferSize covers typical messages without reallocating.
const initialBufferSize = 32

// pending is the key currently being pressed. The zero value means no key.
type pending struct {
	digit   byte
	presses int
	set     bool
}

// decoder holds the state of a single decode call.
type decoder struct {
	out []byte
	key pending
}

// press records a press of digit c. It reports the letter committed for the
// previous key, if a different key was pending.
func (d *decoder) press(c byte) byte {
	if d.key.set && d.key.digit == c {
		d.key.presses++
		return 0
	}
	committed := d.commit()
	d.key = pending{digit: c, presses: 1, set: true}
	return committed
}

// commit appends the letter selected by the pending key and clears it.
// Returns the appended letter, or 0 if no key was pending.
func (d *decoder) commit() byte {
	if !d.key.set {
		return 0
	}
	letters := layout[d.key.digit-'0']
	c := letters[(d.key.presses-1)%len(letters)]
	d.out = append(d.out, c)
	d.key = pending{}
	return c
}

// deleteLast removes the last committed letter. Reports whether one existed.
func (d *decoder) deleteLast() bool {
	if len(d.out) == 0 {
		return false
	}
	d.out = d.out[:len(d.out)-1]
	return true
}

// Decode converts a key-press string into the text it spells.
// Empty input yields an empty string.
func Decode(input string) string {
	return scan(input, nil)
}

// DecodeBytes is like Decode for a byte slice. A nil slice is treated as
// absent input and yields an empty string.
func DecodeBytes(input []byte) string {
	return scan(input, nil)
}

// scan runs the decoder over input, reporting each step to fn when non-nil.
func scan[T string | []byte](input T, fn func(Step)) string {
	if len(input) == 0 {
		return ""
	}

	d := decoder{out: make([]byte, 0, min(len(input), initialBufferSize))}
	for i := 0; i < len(input); i++ {
		c := input[i]
		kind := Classify(rune(c))
		step := Step{Index: i, Token: c, Kind: kind}

		switch kind {
		case KindTerminator:
			step.Committed = d.commit()
			if fn != nil {
				step.Len = len(d.out)
				fn(step)
			}
			return string(d.out)
		case KindDigit:
			step.Committed = d.press(c)
		default:
			step.Committed = d.commit()
			if kind == KindBackspace {
				step.Deleted = d.deleteLast()
			}
		}

		if fn != nil {
			step.Len = len(d.out)
			fn(step)
		}
	}

	step := Step{Index: len(input), Kind: KindEnd, Committed: d.commit()}
	if fn != nil {
		step.Len = len(d.out)
		fn(step)
	}
	return string(d.out)
}
