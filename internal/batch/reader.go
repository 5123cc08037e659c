package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"
)

// Reader errors.
var (
	ErrInvalidJSON  = errors.New("invalid JSON record")
	ErrMissingField = errors.New("missing string field")
)

// Item is one input to decode.
type Item struct {
	// Source names where the item came from (file path or "stdin").
	Source string
	// Line is the 1-based line number within Source.
	Line int
	// Input is the raw key-press string.
	Input string
}

// Reader yields items one at a time. Next returns io.EOF after the last item.
type Reader interface {
	Next() (Item, error)
}

type lineReader struct {
	source string
	r      *bufio.Reader
	line   int
}

// NewLineReader returns a Reader producing one item per line of r.
// Carriage returns before the newline are dropped; blank lines are kept
// and decode to empty output. Lines have no length limit.
func NewLineReader(source string, r io.Reader) Reader {
	return newLineReader(source, r)
}

func newLineReader(source string, r io.Reader) *lineReader {
	return &lineReader{source: source, r: bufio.NewReaderSize(r, 64*1024)}
}

func (l *lineReader) Next() (Item, error) {
	text, err := l.r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if text == "" {
			return Item{}, io.EOF
		}
	default:
		return Item{}, fmt.Errorf("%s:%d: %w", l.source, l.line+1, err)
	}
	l.line++
	text = strings.TrimSuffix(text, "\n")
	return Item{
		Source: l.source,
		Line:   l.line,
		Input:  strings.TrimSuffix(text, "\r"),
	}, nil
}

type jsonlReader struct {
	lines *lineReader
	field string
}

// NewJSONLReader returns a Reader producing one item per JSON Lines record.
// The input is the string found at the gjson path field. Blank lines are
// skipped.
func NewJSONLReader(source string, r io.Reader, field string) Reader {
	return &jsonlReader{lines: newLineReader(source, r), field: field}
}

func (j *jsonlReader) Next() (Item, error) {
	for {
		item, err := j.lines.Next()
		if err != nil {
			return Item{}, err
		}
		record := strings.TrimSpace(item.Input)
		if record == "" {
			continue
		}
		if !gjson.Valid(record) {
			return Item{}, fmt.Errorf("%s:%d: %w", item.Source, item.Line, ErrInvalidJSON)
		}
		res := gjson.Get(record, j.field)
		if !res.Exists() || res.Type != gjson.String {
			return Item{}, fmt.Errorf("%s:%d: %w %q", item.Source, item.Line, ErrMissingField, j.field)
		}
		item.Input = res.String()
		return item, nil
	}
}

// ReadAll drains r.
func ReadAll(r Reader) ([]Item, error) {
	var items []Item
	for {
		item, err := r.Next()
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
}
