package util

import (
	"io"

	"golang.org/x/term"
)

// TerminalDetector reports whether a file descriptor is attached to a terminal
type TerminalDetector interface {
	IsTerminal(fd int) bool
}

// DefaultTerminal implements TerminalDetector with golang.org/x/term
type DefaultTerminal struct{}

// IsTerminal checks if fd is a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

type fder interface {
	Fd() uintptr
}

// IsTerminalWriter reports whether w writes to a terminal. Writers without a file
// descriptor (buffers, pipes wrapped in other writers) never are.
func IsTerminalWriter(w io.Writer, terminal TerminalDetector) bool {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	f, ok := w.(fder)
	if !ok {
		return false
	}

	return terminal.IsTerminal(int(f.Fd()))
}
