package pager

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpyw/smkit/internal/cli/terminal"
)

type fdBuffer struct {
	bytes.Buffer
}

func (*fdBuffer) Fd() uintptr {
	return 1
}

//nolint:paralleltest // Test modifies package globals (Page, terminal.IsTTY, terminal.GetSize)
func TestWithPagerWriter(t *testing.T) {
	origPage, origIsTTY, origGetSize := Page, terminal.IsTTY, terminal.GetSize

	t.Cleanup(func() {
		Page, terminal.IsTTY, terminal.GetSize = origPage, origIsTTY, origGetSize
	})

	var paged string

	Page = func(content string) error {
		paged = content

		return nil
	}
	terminal.GetSize = func(int) (int, int, error) { return 80, 3, nil }

	write := func(lines int) func(io.Writer) error {
		return func(w io.Writer) error {
			_, err := io.WriteString(w, strings.Repeat("secret\n", lines))

			return err
		}
	}

	tests := []struct {
		name      string
		tty       bool
		noPager   bool
		lines     int
		wantPaged bool
	}{
		{name: "not a terminal", tty: false, lines: 10},
		{name: "disabled", tty: true, noPager: true, lines: 10},
		{name: "fits on screen", tty: true, lines: 2},
		{name: "too long", tty: true, lines: 10, wantPaged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paged = ""
			terminal.IsTTY = func(uintptr) bool { return tt.tty }

			var out fdBuffer

			require.NoError(t, WithPagerWriter(&out, tt.noPager, write(tt.lines)))

			if tt.wantPaged {
				assert.Empty(t, out.String())
				assert.Equal(t, tt.lines, strings.Count(paged, "\n"))
			} else {
				assert.Empty(t, paged)
				assert.Equal(t, tt.lines, strings.Count(out.String(), "\n"))
			}
		})
	}
}

func TestWithPagerWriter_Error(t *testing.T) {
	t.Parallel()

	err := WithPagerWriter(&bytes.Buffer{}, false, func(io.Writer) error { return assert.AnError })
	assert.ErrorIs(t, err, assert.AnError)
}
