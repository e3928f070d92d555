package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// line is a single line of text. One rune takes one cell.
type line struct {
	buffer []rune
}

func newline() *line {
	return &line{buffer: []rune{}}
}

func (l *line) String() string {
	return string(l.buffer)
}

func (l *line) width() int {
	return len(l.buffer)
}

func (l *line) append(r rune) {
	l.buffer = append(l.buffer, r)
}

// buffer is the text being edited, in row order.
type buffer struct {
	lines []*line
}

func newbuffer() *buffer {
	return &buffer{}
}

var errInvalidUTF8 = errors.New("invalid UTF-8")

// load reads r and splits it into lines.
// "\n" and "\r\n" both end a line. A trailing line break does not start a new line.
// The content must be valid UTF-8.
func load(r io.Reader) (*buffer, error) {
	b := newbuffer()

	reader := bufio.NewReader(r)
	for n := 1; ; n++ {
		s, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read: %w", err)
		}

		if s == "" {
			break
		}

		if t, ok := strings.CutSuffix(s, "\n"); ok {
			s = strings.TrimSuffix(t, "\r")
		}
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("line %v: %w", n, errInvalidUTF8)
		}

		b.lines = append(b.lines, &line{buffer: []rune(s)})

		if err == io.EOF {
			break
		}
	}

	return b, nil
}

func loadFile(filename string) (*buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open a file: %w", err)
	}
	defer f.Close()

	b, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}

	return b, nil
}

func (b *buffer) isEmpty() bool {
	return len(b.lines) == 0
}

func (b *buffer) len() int {
	return len(b.lines)
}

// line returns the text at row, or false if the buffer has no such row.
func (b *buffer) line(row int) (string, bool) {
	if row < 0 || row >= len(b.lines) {
		return "", false
	}

	return b.lines[row].String(), true
}

// write appends r to the end of the line at row and returns the caret position right after it.
// Empty lines are added first if the buffer is shorter than row.
func (b *buffer) write(r rune, row int) position {
	for len(b.lines) <= row {
		b.lines = append(b.lines, newline())
	}

	l := b.lines[row]
	l.append(r)

	return position{x: l.width(), y: row}
}
