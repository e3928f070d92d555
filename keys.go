package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

type keycode int

const (
	keyUnknown keycode = iota
	keyChar
	keyUp
	keyDown
	keyLeft
	keyRight
	keyPageUp
	keyPageDown
	keyHome
	keyEnd
	keyInsert
	keyDelete
	keyEnter
	keyTab
	keyBackspace
	keyEsc
)

type modifier uint8

const (
	modShift modifier = 1 << iota
	modAlt
	modCtrl
)

// keyevent is a single key press.
// r is set only when code is keyChar.
type keyevent struct {
	code keycode
	r    rune
	mod  modifier
}

func ctrl(input byte) rune {
	return rune(input & 0x1f)
}

// eventsource delivers key events one by one. next blocks until a key is pressed.
type eventsource interface {
	next() (keyevent, error)
}

// keyreader decodes the byte stream of a raw mode terminal into key events.
type keyreader struct {
	r *bufio.Reader
}

func newkeyreader(r io.Reader) *keyreader {
	return &keyreader{r: bufio.NewReader(r)}
}

func (k *keyreader) next() (keyevent, error) {
	r, size, err := k.r.ReadRune()
	if err != nil {
		return keyevent{}, err
	}

	if r == utf8.RuneError && size == 1 {
		return keyevent{code: keyUnknown}, nil
	}

	if r == 0x1b {
		return k.escape()
	}

	return decodeRune(r), nil
}

func decodeRune(r rune) keyevent {
	switch {
	case r == '\r' || r == '\n':
		return keyevent{code: keyEnter}
	case r == '\t':
		return keyevent{code: keyTab}
	case r == 0x7f || r == ctrl('h'):
		return keyevent{code: keyBackspace}
	case r >= ctrl('a') && r <= ctrl('z'):
		return keyevent{code: keyChar, r: 'a' + r - 1, mod: modCtrl}
	case r < 0x20:
		return keyevent{code: keyUnknown}
	default:
		return keyevent{code: keyChar, r: r}
	}
}

// escape decodes what follows ESC.
// A terminal sends a whole sequence in one write, so a lone ESC has nothing buffered after it.
func (k *keyreader) escape() (keyevent, error) {
	if k.r.Buffered() == 0 {
		return keyevent{code: keyEsc}, nil
	}

	b, err := k.r.ReadByte()
	if err != nil {
		return keyevent{}, err
	}

	switch b {
	case '[':
		// alt+[ when nothing follows
		if k.r.Buffered() == 0 {
			return keyevent{code: keyChar, r: '[', mod: modAlt}, nil
		}
		return k.csi()

	case 'O':
		// SS3, sent for arrows and home/end in application cursor mode
		if k.r.Buffered() == 0 {
			return keyevent{code: keyChar, r: 'O', mod: modAlt}, nil
		}
		f, err := k.r.ReadByte()
		if err != nil {
			return keyevent{}, err
		}
		return keyevent{code: finalKey(f)}, nil

	case 0x1b:
		return keyevent{code: keyEsc}, nil
	}

	if err := k.r.UnreadByte(); err != nil {
		return keyevent{}, err
	}

	r, _, err := k.r.ReadRune()
	if err != nil {
		return keyevent{}, err
	}

	ev := decodeRune(r)
	ev.mod |= modAlt
	return ev, nil
}

// csi reads parameters and the final byte of "ESC [ ...".
func (k *keyreader) csi() (keyevent, error) {
	var params strings.Builder
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return keyevent{}, err
		}

		// final byte
		if b >= 0x40 && b <= 0x7e {
			return decodeCSI(params.String(), b), nil
		}

		params.WriteByte(b)
	}
}

func decodeCSI(params string, final byte) keyevent {
	fields := strings.Split(params, ";")

	var mod modifier
	if len(fields) >= 2 {
		// xterm sends 1 + (shift | alt<<1 | ctrl<<2)
		if m, err := strconv.Atoi(fields[1]); err == nil && m > 1 {
			mod = modifier(m-1) & (modShift | modAlt | modCtrl)
		}
	}

	if final != '~' {
		return keyevent{code: finalKey(final), mod: mod}
	}

	var code keycode
	switch fields[0] {
	case "1", "7":
		code = keyHome
	case "2":
		code = keyInsert
	case "3":
		code = keyDelete
	case "4", "8":
		code = keyEnd
	case "5":
		code = keyPageUp
	case "6":
		code = keyPageDown
	default:
		code = keyUnknown
	}

	return keyevent{code: code, mod: mod}
}

func finalKey(b byte) keycode {
	switch b {
	case 'A':
		return keyUp
	case 'B':
		return keyDown
	case 'C':
		return keyRight
	case 'D':
		return keyLeft
	case 'H':
		return keyHome
	case 'F':
		return keyEnd
	}

	return keyUnknown
}
