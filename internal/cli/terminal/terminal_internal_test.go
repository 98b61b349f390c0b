package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockFdWriter struct {
	bytes.Buffer
	fd uintptr
}

func (m *mockFdWriter) Fd() uintptr {
	return m.fd
}

//nolint:paralleltest // Test modifies package globals (IsTTY, GetSize)
func TestWidth(t *testing.T) {
	origIsTTY := IsTTY
	origGetSize := GetSize

	t.Cleanup(func() {
		IsTTY = origIsTTY
		GetSize = origGetSize
	})

	tests := []struct {
		name      string
		tty       bool
		width     int
		sizeErr   error
		wantWidth int
		wantTTY   bool
	}{
		{name: "terminal", tty: true, width: 120, wantWidth: 120, wantTTY: true},
		{name: "not a terminal", tty: false, width: 120, wantWidth: DefaultWidth, wantTTY: false},
		{name: "size error", tty: true, sizeErr: assert.AnError, wantWidth: DefaultWidth, wantTTY: true},
		{name: "zero width", tty: true, width: 0, wantWidth: DefaultWidth, wantTTY: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			IsTTY = func(_ uintptr) bool { return tt.tty }
			GetSize = func(_ int) (int, int, error) { return tt.width, 40, tt.sizeErr }

			width, tty := Width(&mockFdWriter{fd: 1})
			assert.Equal(t, tt.wantWidth, width)
			assert.Equal(t, tt.wantTTY, tty)
		})
	}
}

func TestWidth_NonFder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	width, tty := Width(&buf)
	assert.Equal(t, DefaultWidth, width)
	assert.False(t, tty)
	assert.False(t, IsTerminalWriter(&buf))
}
