// Package terminal detects whether CLI output goes to a terminal and how wide it is.
package terminal

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used when the width cannot be detected.
const DefaultWidth = 80

// Fder is an interface for types that have a file descriptor.
type Fder interface {
	Fd() uintptr
}

// GetSize returns the terminal width and height for the given file descriptor.
//
//nolint:gochecknoglobals // Replaced in tests
var GetSize = term.GetSize

// IsTTY checks if the file descriptor is a TTY.
//
//nolint:gochecknoglobals // Replaced in tests
var IsTTY = isatty.IsTerminal

// Width reports the width of w and whether w is a terminal.
// Non-terminals and failed detections report DefaultWidth.
func Width(w io.Writer) (int, bool) {
	if !IsTerminalWriter(w) {
		return DefaultWidth, false
	}

	width, _, err := GetSize(int(w.(Fder).Fd())) //nolint:forcetypeassert // checked by IsTerminalWriter
	if err != nil || width <= 0 {
		return DefaultWidth, true
	}

	return width, true
}

// IsTerminalWriter returns true if the given writer is a terminal.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(Fder)
	if !ok {
		return false
	}

	return IsTTY(f.Fd())
}
