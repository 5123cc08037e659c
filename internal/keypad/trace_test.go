package keypad

import (
	"testing"
)

func TestDecodeTraceMatchesDecode(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"33#",
		"227*#",
		"4433555 555666#",
		"8 88777444666*664#",
		"222#999999",
		"456",
		"*******#",
	}

	for _, in := range inputs {
		got := DecodeTrace(in, func(Step) {})
		if want := Decode(in); got != want {
			t.Errorf("DecodeTrace(%q) = %q, Decode = %q", in, got, want)
		}
		if got := DecodeTrace(in, nil); got != Decode(in) {
			t.Errorf("DecodeTrace(%q, nil) = %q, want %q", in, got, Decode(in))
		}
	}
}

func TestDecodeTraceSteps(t *testing.T) {
	var steps []Step
	out := DecodeTrace("227*#99", func(s Step) { steps = append(steps, s) })
	if out != "B" {
		t.Fatalf("DecodeTrace output = %q, want %q", out, "B")
	}

	want := []Step{
		{Index: 0, Token: '2', Kind: KindDigit, Len: 0},
		{Index: 1, Token: '2', Kind: KindDigit, Len: 0},
		{Index: 2, Token: '7', Kind: KindDigit, Committed: 'B', Len: 1},
		{Index: 3, Token: '*', Kind: KindBackspace, Committed: 'P', Deleted: true, Len: 1},
		{Index: 4, Token: '#', Kind: KindTerminator, Len: 1},
	}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d: %v", len(steps), len(want), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestDecodeTraceReportsFinalFlush(t *testing.T) {
	var last Step
	out := DecodeTrace("22", func(s Step) { last = s })
	if out != "B" {
		t.Fatalf("DecodeTrace output = %q, want B", out)
	}
	if last.Kind != KindEnd || last.Index != 2 || last.Committed != 'B' || last.Len != 1 {
		t.Errorf("final step = %+v, want end step committing B", last)
	}
}

func TestStepString(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Token: '2', Kind: KindDigit, Len: 0}, `'2' digit len=0`},
		{Step{Token: '7', Kind: KindDigit, Committed: 'B', Len: 1}, `'7' digit +B len=1`},
		{Step{Token: '*', Kind: KindBackspace, Deleted: true, Len: 0}, `'*' backspace -1 len=0`},
		{Step{Index: 5, Kind: KindEnd, Committed: 'C', Len: 3}, `EOF end +C len=3`},
	}

	for _, tt := range tests {
		if got := tt.step.String(); got != tt.want {
			t.Errorf("Step.String() = %q, want %q", got, tt.want)
		}
	}
}
