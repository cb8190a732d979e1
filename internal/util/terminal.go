package util

import (
	"io"

	"golang.org/x/term"
)

// fdWriter is satisfied by *os.File
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// TerminalWidth returns the column count of w when w is a terminal
func TerminalWidth(w io.Writer) (int, bool) {
	fd, ok := IsTerminal(w)
	if !ok {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}

// IsTerminal reports whether w writes to a terminal and returns its file descriptor
func IsTerminal(w io.Writer) (int, bool) {
	f, ok := w.(fdWriter)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())

	return fd, term.IsTerminal(fd)
}
