package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// debug log goes to a file given by -debug. stderr is not usable while the screen is in raw mode.
var debugout io.Writer = io.Discard

func debug(format string, a ...any) {
	fmt.Fprintf(debugout, format, a...)
}

func main() {
	if err := start(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", progname, err)
		os.Exit(1)
	}
}

func start(args []string) (err error) {
	fs := flag.NewFlagSet(progname, flag.ContinueOnError)
	debugfile := fs.String("debug", "", "write debug log to the `file`")
	version := fs.Bool("version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [flags] [file]\n", progname)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *version {
		fmt.Fprintln(os.Stdout, progname, VersionTag())
		return nil
	}

	if *debugfile != "" {
		f, err := os.OpenFile(*debugfile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		debugout = f
	}

	/*
	 * file handling
	 */

	buf := newbuffer()
	switch fs.NArg() {
	case 0:
		// start with an empty buffer

	case 1:
		buf, err = loadFile(fs.Arg(0))
		if err != nil {
			return err
		}
		debug("loaded %s: %v lines\n", fs.Arg(0), buf.len())

	default:
		return fmt.Errorf("too many arguments: %v", fs.Args())
	}

	/*
	 * start editor main routine
	 */

	return session(newttyterm(os.Stdin, os.Stdout), buf, newkeyreader(os.Stdin))
}

// session runs the editor on t in raw mode. t.terminate runs on every path, including a failed init.
func session(t terminal, buf *buffer, events eventsource) (err error) {
	defer func() {
		if terr := t.terminate(); terr != nil && err == nil {
			err = terr
		}
	}()

	if err := t.init(); err != nil {
		return err
	}

	return newEditor(t, buf).run(events)
}
