package keypad

import (
	"strings"
	"sync"
	"testing"
)

func TestDecodeProvidedExamples(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"33#", "E"},
		{"227*#", "B"},
		{"4433555 555666#", "HELLO"},
		{"8 88777444666*664#", "TURING"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Decode(tt.input); got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeCyclesKeys(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2#", "A"},
		{"22#", "B"},
		{"222#", "C"},
		{"2222#", "A"},
		{"7777#", "S"},
		{"77777#", "P"},
		{"9999#", "Z"},
		{"0#", " "},
		{"00#", " "},
		{"1#", "&"},
		{"11#", "'"},
		{"111#", "("},
	}

	for _, tt := range tests {
		if got := Decode(tt.input); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecodeRepeatedPressesMatchLayout(t *testing.T) {
	for d := 0; d <= 9; d++ {
		letters := Letters(d)
		for k := 1; k <= 2*len(letters)+1; k++ {
			input := strings.Repeat(string(rune('0'+d)), k) + "#"
			want := string(letters[(k-1)%len(letters)])
			if got := Decode(input); got != want {
				t.Errorf("Decode(%q) = %q, want %q", input, got, want)
			}
		}
	}
}

func TestDecodeBackspace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"22*#", ""},
		{"22*2#", "A"},
		{"*******#", ""},
		{"4433555*******#", ""},
		{"4433*#", "H"},
		{"2*3*4#", "G"},
	}

	for _, tt := range tests {
		if got := Decode(tt.input); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecodeIgnoresInputAfterTerminator(t *testing.T) {
	if got, want := Decode("222#999999"), Decode("222#"); got != want {
		t.Errorf("Decode(%q) = %q, want %q", "222#999999", got, want)
	}
	if got := Decode("222#999999"); got != "C" {
		t.Errorf("Decode(%q) = %q, want %q", "222#999999", got, "C")
	}
	if got := Decode("2#*"); got != "A" {
		t.Errorf("Decode(%q) = %q, want %q", "2#*", got, "A")
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "#", "#22", "***", " * "} {
		if got := Decode(input); got != "" {
			t.Errorf("Decode(%q) = %q, want empty", input, got)
		}
	}
}

func TestDecodeBytes(t *testing.T) {
	if got := DecodeBytes(nil); got != "" {
		t.Errorf("DecodeBytes(nil) = %q, want empty", got)
	}
	if got := DecodeBytes([]byte{}); got != "" {
		t.Errorf("DecodeBytes([]byte{}) = %q, want empty", got)
	}
	if got := DecodeBytes([]byte("4433555 555666#")); got != "HELLO" {
		t.Errorf("DecodeBytes(HELLO) = %q, want %q", got, "HELLO")
	}
}

func TestDecodeFlushesWithoutTerminator(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"456", "GJM"},
		{"22", "B"},
		{"2233", "BE"},
		{"2 ", "A"},
	}

	for _, tt := range tests {
		if got := Decode(tt.input); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecodeSeparators(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 2#", "AA"},
		{"2  2#", "AA"},
		{"2\t2#", "AA"},
		{"2x2#", "AA"},
		{"2é2#", "AA"},
		{"22 22#", "BB"},
		{"44 444#", "HI"},
	}

	for _, tt := range tests {
		if got := Decode(tt.input); got != tt.want {
			t.Errorf("Decode(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	inputs := []string{"8 88777444666*664#", "4433555 555666#", "2*", ""}
	first := make([]string, len(inputs))
	for i, in := range inputs {
		first[i] = Decode(in)
	}
	for round := 0; round < 3; round++ {
		for i := len(inputs) - 1; i >= 0; i-- {
			if got := Decode(inputs[i]); got != first[i] {
				t.Errorf("round %d: Decode(%q) = %q, want %q", round, inputs[i], got, first[i])
			}
		}
	}
}

func TestDecodeConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Decode("8 88777444666*664#"); got != "TURING" {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent Decode = %q, want TURING", got)
	}
}

func TestDecodeAllocationsDoNotGrowWithInput(t *testing.T) {
	small := strings.Repeat("2", 99) + "#"
	large := strings.Repeat("2", 99999) + "#"

	smallAllocs := testing.AllocsPerRun(20, func() { Decode(small) })
	largeAllocs := testing.AllocsPerRun(20, func() { Decode(large) })

	if largeAllocs > smallAllocs {
		t.Errorf("allocations grew with input: %v for 100 bytes, %v for 100000 bytes", smallAllocs, largeAllocs)
	}
}
