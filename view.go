package main

import (
	"github.com/mattn/go-runewidth"
)

const (
	filler   = "~"
	progname = "tilde"
	author   = "hidetatz"
)

// render draws b on every row of a viewport of the given size.
// Rows beyond the end of b get the filler. An empty buffer also gets the welcome banner.
func render(t terminal, b *buffer, size position) {
	width, height := size.x, size.y

	for row := 0; row < height; row++ {
		t.movecaret(position{0, row})
		t.clearline()

		if l, ok := b.line(row); ok {
			t.print(runewidth.Truncate(l, width, ""))
		} else {
			t.print(filler)
		}

		// a line break on the last row scrolls the screen
		if row+1 < height {
			t.print("\r\n")
		}
	}

	if b.isEmpty() {
		renderWelcome(t, size)
	}
}

func welcomeLines() []string {
	return []string{
		progname + " editor",
		VersionTag(),
		"by " + author,
	}
}

func renderWelcome(t terminal, size position) {
	width, height := size.x, size.y
	top := height/3 - 1

	for i, msg := range welcomeLines() {
		y := top + i
		if y < 0 {
			// the viewport is too short for the whole banner
			continue
		}
		if y >= height {
			break
		}

		msg = runewidth.Truncate(msg, width, "")
		x := max((width-runewidth.StringWidth(msg))/2, 0)

		t.movecaret(position{x, y})
		t.print(msg)
	}
}
