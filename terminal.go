package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// position is a cell on the screen. left, top is (0, 0).
type position struct {
	x, y int
}

// terminal is what the editor draws to.
// Drawing methods only queue output; nothing is shown until execute is called.
type terminal interface {
	init() error
	terminate() error

	// size returns the viewport as {x: columns, y: rows}.
	size() (position, error)

	movecaret(p position)
	clearscreen()
	clearline()
	hidecaret()
	showcaret()
	print(s string)

	execute() error
}

// commands is a queue of terminal output which is written at once on flush.
// Writing a whole frame in a single write avoids flickering.
type commands struct {
	buf bytes.Buffer
}

func (c *commands) movecaret(p position) {
	// CUP is 1-based
	c.buf.WriteString(ansi.CursorPosition(p.x+1, p.y+1))
}

func (c *commands) clearscreen() {
	c.buf.WriteString(ansi.EraseEntireScreen)
}

func (c *commands) clearline() {
	c.buf.WriteString(ansi.EraseEntireLine)
}

func (c *commands) hidecaret() {
	c.buf.WriteString(ansi.ResetTextCursorEnableMode)
}

func (c *commands) showcaret() {
	c.buf.WriteString(ansi.SetTextCursorEnableMode)
}

func (c *commands) print(s string) {
	c.buf.WriteString(s)
}

// flush writes all the queued commands to w and empties the queue.
// The queue is emptied even if the write fails.
func (c *commands) flush(w io.Writer) error {
	if c.buf.Len() == 0 {
		return nil
	}

	defer c.buf.Reset()

	if _, err := w.Write(c.buf.Bytes()); err != nil {
		return fmt.Errorf("write to terminal: %w", err)
	}

	return nil
}

// ttyterm is the terminal backed by a real tty.
type ttyterm struct {
	in  *os.File
	out *os.File

	// original state to restore at terminate. nil until init succeeds.
	orig *term.State
	q    commands
}

func newttyterm(in, out *os.File) *ttyterm {
	return &ttyterm{in: in, out: out}
}

func (t *ttyterm) init() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	orig, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.orig = orig

	t.clearscreen()
	t.movecaret(position{0, 0})
	return t.execute()
}

func (t *ttyterm) terminate() error {
	flusherr := t.execute()

	if t.orig != nil {
		if err := term.Restore(int(t.in.Fd()), t.orig); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
		t.orig = nil
	}

	return flusherr
}

func (t *ttyterm) size() (position, error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return position{}, fmt.Errorf("get window size: %w", err)
	}

	return position{x: int(ws.Col), y: int(ws.Row)}, nil
}

func (t *ttyterm) movecaret(p position) { t.q.movecaret(p) }
func (t *ttyterm) clearscreen() { t.q.clearscreen() }
func (t *ttyterm) clearline() { t.q.clearline() }
func (t *ttyterm) hidecaret() { t.q.hidecaret() }
func (t *ttyterm) showcaret() { t.q.showcaret() }
func (t *ttyterm) print(s string) { t.q.print(s) }

func (t *ttyterm) execute() error {
	return t.q.flush(t.out)
}
