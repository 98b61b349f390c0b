// Package pager pages long terminal output through moor.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/smkit/internal/cli/terminal"
)

// Page displays content in the pager.
//
//nolint:gochecknoglobals // Replaced in tests
var Page = func(content string) error {
	return moor.PageFromString(content, moor.Options{})
}

// WithPagerWriter executes fn with pager support.
// Output goes straight to stdout when noPager is set, when stdout is not a
// terminal, or when it fits on one screen.
func WithPagerWriter(stdout io.Writer, noPager bool, fn func(w io.Writer) error) error {
	if noPager || !terminal.IsTerminalWriter(stdout) {
		return fn(stdout)
	}

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}

	fd := int(stdout.(terminal.Fder).Fd()) //nolint:forcetypeassert // checked by IsTerminalWriter
	if fitsInTerminal(fd, buf.String()) {
		_, err := stdout.Write(buf.Bytes())

		return err
	}

	return Page(buf.String())
}

// fitsInTerminal reports whether content fits above the prompt line.
// An unknown height counts as not fitting.
func fitsInTerminal(fd int, content string) bool {
	_, height, err := terminal.GetSize(fd)
	if err != nil || height <= 0 {
		return false
	}

	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}

	return lines < height
}
