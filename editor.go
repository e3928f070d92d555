package main

import (
	"unicode"
)

const exitMessage = "Exiting.\r\n"

// editor owns the buffer and the caret, and draws them to term once per key press.
type editor struct {
	term  terminal
	buf   *buffer
	caret position
	// true once quit is requested. The next frame is the last one.
	quit bool
}

func newEditor(term terminal, buf *buffer) *editor {
	if buf == nil {
		buf = newbuffer()
	}

	return &editor{term: term, buf: buf}
}

// run draws a frame, waits for a key, and handles it, until quit is requested.
// The frame after the quit request is drawn before run returns.
func (e *editor) run(events eventsource) error {
	for {
		if err := e.refresh(); err != nil {
			return err
		}

		if e.quit {
			return nil
		}

		ev, err := events.next()
		if err != nil {
			return err
		}

		if err := e.evaluate(ev); err != nil {
			return err
		}
	}
}

func (e *editor) evaluate(ev keyevent) error {
	switch ev.code {
	case keyChar:
		switch {
		case ev.mod&modCtrl != 0 && ev.r == 'q':
			e.quit = true

		case ev.mod&modCtrl != 0:
			debug("ignore ctrl key: %q\n", ev.r)

		case unicode.IsPrint(ev.r):
			e.caret = e.buf.write(ev.r, e.caret.y)
			debug("write %q, caret: {x: %v, y: %v}\n", ev.r, e.caret.x, e.caret.y)
		}

	case keyUp, keyDown, keyLeft, keyRight, keyPageUp, keyPageDown, keyHome, keyEnd:
		return e.moveCaret(ev.code)

	default:
		debug("ignore key: %v\n", ev.code)
	}

	return nil
}

// moveCaret moves the caret within the current viewport. It never wraps.
func (e *editor) moveCaret(code keycode) error {
	size, err := e.term.size()
	if err != nil {
		return err
	}

	lastx := max(size.x-1, 0)
	lasty := max(size.y-1, 0)
	x, y := e.caret.x, e.caret.y

	switch code {
	case keyUp:
		y = max(y-1, 0)
	case keyDown:
		y = min(y+1, lasty)
	case keyLeft:
		x = max(x-1, 0)
	case keyRight:
		x = min(x+1, lastx)
	case keyPageUp:
		y = 0
	case keyPageDown:
		y = lasty
	case keyHome:
		x = 0
	case keyEnd:
		x = lastx
	}

	// the viewport may have shrunk since the last move
	e.caret = position{x: min(x, lastx), y: min(y, lasty)}
	return nil
}

// refresh draws one frame.
func (e *editor) refresh() error {
	e.term.hidecaret()

	if e.quit {
		e.term.clearscreen()
		e.term.movecaret(position{0, 0})
		e.term.print(exitMessage)
	} else {
		size, err := e.term.size()
		if err != nil {
			return err
		}

		render(e.term, e.buf, size)
		e.term.movecaret(e.caret)
	}

	e.term.showcaret()
	return e.term.execute()
}
