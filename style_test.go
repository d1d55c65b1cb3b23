package gohelp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockTerminal struct {
	isTerminal bool
}

func (m *mockTerminal) IsTerminal(fd int) bool {
	return m.isTerminal
}

type fdBuffer struct {
	bytes.Buffer
}

func (b *fdBuffer) Fd() uintptr {
	return 42
}

func TestNewStyle(t *testing.T) {
	tests := []struct {
		name      string
		writer    interface{ Write([]byte) (int, error) }
		terminal  bool
		wantColor bool
	}{
		{"buffer", &bytes.Buffer{}, true, false},
		{"terminal", &fdBuffer{}, true, true},
		{"redirected file", &fdBuffer{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := newStyle(tt.writer, &mockTerminal{isTerminal: tt.terminal})
			_, isColor := style.(*ColorStyle)
			assert.Equal(t, tt.wantColor, isColor)
		})
	}
}

func TestPlainStyle(t *testing.T) {
	s := PlainStyle{}

	assert.Equal(t, "Usage:", s.Heading("Usage:"))
	assert.Equal(t, "name", s.Emphasis("name"))
	assert.Equal(t, "app ls", s.Code("app ls"))
}

func TestColorStyle(t *testing.T) {
	s := NewColorStyle()

	assert.Equal(t, "\x1b[33mUsage:\x1b[0m", s.Heading("Usage:"))
	assert.Equal(t, "\x1b[32mname\x1b[0m", s.Emphasis("name"))
	assert.Equal(t, "\x1b[32mapp ls\x1b[0m", s.Code("app ls"))
}
