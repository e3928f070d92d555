package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

func lines(b *buffer) []string {
	var ls []string
	for i := 0; i < b.len(); i++ {
		l, _ := b.line(i)
		ls = append(ls, l)
	}
	return ls
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single line", "hello", []string{"hello"}},
		{"trailing line break", "a\nb\n", []string{"a", "b"}},
		{"no trailing line break", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"only a line break", "\n", []string{""}},
		{"multibyte", "こんにちは\nworld", []string{"こんにちは", "world"}},
		{"tab kept as is", "\tx", []string{"\tx"}},
		{"carriage return without line break", "a\r", []string{"a\r"}},
		{"replacement character in source", "caf\uFFFD\n", []string{"caf\uFFFD"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := load(strings.NewReader(tc.content))
			if err != nil {
				t.Fatal(err)
			}

			if got := lines(b); !equal(got, tc.want) {
				t.Errorf("got %q, want %q", got, tc.want)
			}

			if b.isEmpty() != (len(tc.want) == 0) {
				t.Errorf("isEmpty: got %v", b.isEmpty())
			}
		})
	}
}

func TestLoad_invalidUTF8(t *testing.T) {
	for _, content := range []string{"caf\xe9\n", "ok\ncaf\xe9", "\xff\xfe\r\n"} {
		b, err := load(strings.NewReader(content))
		if !errors.Is(err, errInvalidUTF8) {
			t.Errorf("%q: got %v, want %v", content, err, errInvalidUTF8)
		}
		if b != nil {
			t.Errorf("%q: no buffer must be returned, got %q", content, lines(b))
		}
	}
}

func TestLoad_readError(t *testing.T) {
	errRead := errors.New("disk on fire")

	_, err := load(iotest.ErrReader(errRead))
	if !errors.Is(err, errRead) {
		t.Fatalf("got %v, want %v", err, errRead)
	}
}

func TestLoadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(name, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatal(err)
	}

	b, err := loadFile(name)
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"one", "two", "three"}; !equal(lines(b), want) {
		t.Errorf("got %q, want %q", lines(b), want)
	}

	if _, err := loadFile(name + ".missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not exist error, got %v", err)
	}
}

func TestBuffer_write(t *testing.T) {
	b := newbuffer()
	if !b.isEmpty() {
		t.Fatal("new buffer must be empty")
	}

	var pos position
	for _, r := range "abc" {
		pos = b.write(r, 0)
	}

	if got, _ := b.line(0); got != "abc" {
		t.Errorf("line 0: got %q", got)
	}

	if want := (position{3, 0}); pos != want {
		t.Errorf("caret: got %v, want %v", pos, want)
	}
}

func TestBuffer_write_pads(t *testing.T) {
	b := newbuffer()

	pos := b.write('x', 5)

	if want := []string{"", "", "", "", "", "x"}; !equal(lines(b), want) {
		t.Errorf("got %q, want %q", lines(b), want)
	}

	if want := (position{1, 5}); pos != want {
		t.Errorf("caret: got %v, want %v", pos, want)
	}
}

func TestBuffer_write_appendsToEnd(t *testing.T) {
	b, err := load(strings.NewReader("hello\nworld"))
	if err != nil {
		t.Fatal(err)
	}

	pos := b.write('!', 1)
	if got, _ := b.line(1); got != "world!" {
		t.Errorf("line 1: got %q", got)
	}

	if want := (position{6, 1}); pos != want {
		t.Errorf("caret: got %v, want %v", pos, want)
	}

	// width is counted in runes, not bytes
	pos = b.write('語', 0)
	if want := (position{6, 0}); pos != want {
		t.Errorf("caret: got %v, want %v", pos, want)
	}
}

func TestBuffer_line_outOfRange(t *testing.T) {
	b := newbuffer()
	b.write('a', 0)

	for _, row := range []int{-1, 1, 100} {
		if _, ok := b.line(row); ok {
			t.Errorf("row %v must not exist", row)
		}
	}
}
