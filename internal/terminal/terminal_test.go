package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerPrompt(t *testing.T) {
	var out bytes.Buffer
	s := NewScanner(strings.NewReader("a\n  save \nlast"), &out)

	line, err := s.Prompt("guess: ")
	require.NoError(t, err)
	assert.Equal(t, "a", line)

	line, err = s.Prompt("guess: ")
	require.NoError(t, err)
	assert.Equal(t, "  save ", line)

	line, err = s.Prompt("guess: ")
	require.NoError(t, err)
	assert.Equal(t, "last", line, "final line without a newline is still read")

	_, err = s.Prompt("guess: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, strings.Repeat("guess: ", 4), out.String())
	assert.NoError(t, s.Close())
}

func TestScannerCRLF(t *testing.T) {
	s := NewScanner(strings.NewReader("y\r\n"), io.Discard)

	line, err := s.Prompt("")
	require.NoError(t, err)
	assert.Equal(t, "y", line)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestScannerWriteError(t *testing.T) {
	s := NewScanner(strings.NewReader("a\n"), failingWriter{})

	_, err := s.Prompt("guess: ")
	assert.EqualError(t, err, "closed")
}

func TestOpenNonTerminal(t *testing.T) {
	r, err := Open(strings.NewReader("x\n"), io.Discard)
	require.NoError(t, err)
	assert.IsType(t, &Scanner{}, r)
}

func TestFilterInput(t *testing.T) {
	_, ok := filterInput('a')
	assert.True(t, ok)
	_, ok = filterInput(26)
	assert.False(t, ok, "ctrl-z is swallowed")
}
