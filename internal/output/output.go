package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/tidwall/sjson"

	"github.com/dshills/phonepad/internal/batch"
)

// Output formats.
const (
	FormatText   = "text"
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Writer renders results to an underlying stream.
type Writer interface {
	Write(res batch.Result) error
	Flush() error
}

// New returns a Writer for format. The color flag only affects the
// pretty format.
func New(format string, w io.Writer, color bool) (Writer, error) {
	bw := bufio.NewWriter(w)
	switch strings.ToLower(format) {
	case "", FormatText:
		return &textWriter{w: bw}, nil
	case FormatPretty:
		return newPrettyWriter(bw, color), nil
	case FormatJSON:
		return &jsonWriter{w: bw}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type textWriter struct {
	w *bufio.Writer
}

func (t *textWriter) Write(res batch.Result) error {
	if _, err := t.w.WriteString(res.Output); err != nil {
		return err
	}
	return t.w.WriteByte('\n')
}

func (t *textWriter) Flush() error { return t.w.Flush() }

type prettyWriter struct {
	w       *bufio.Writer
	raw     lipgloss.Style
	decoded lipgloss.Style
	failed  lipgloss.Style
}

func newPrettyWriter(w *bufio.Writer, color bool) *prettyWriter {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &prettyWriter{
		w:       w,
		raw:     r.NewStyle().Faint(true).TabWidth(lipgloss.NoTabConversion),
		decoded: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		failed:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (p *prettyWriter) Write(res batch.Result) error {
	label := p.decoded
	if res.Err != nil {
		label = p.failed
	}
	decoded := "> DECODED:"
	if res.Output != "" {
		decoded += " " + res.Output
	}
	_, err := fmt.Fprintf(p.w, "%s\n%s\n",
		p.raw.Render("Raw Input: "+res.Input),
		label.Render(decoded))
	return err
}

func (p *prettyWriter) Flush() error { return p.w.Flush() }

type jsonWriter struct {
	w *bufio.Writer
}

func (j *jsonWriter) Write(res batch.Result) error {
	doc, err := encodeResult(res)
	if err != nil {
		return err
	}
	if _, err := j.w.Write(doc); err != nil {
		return err
	}
	return j.w.WriteByte('\n')
}

func (j *jsonWriter) Flush() error { return j.w.Flush() }

func encodeResult(res batch.Result) ([]byte, error) {
	doc := []byte("{}")
	var err error
	set := func(path string, value any) {
		if err == nil {
			doc, err = sjson.SetBytes(doc, path, value)
		}
	}
	if res.Source != "" {
		set("source", res.Source)
	}
	set("line", res.Line)
	set("input", res.Input)
	set("output", res.Output)
	if res.Err != nil {
		set("error", res.Err.Error())
	}
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return doc, nil
}
