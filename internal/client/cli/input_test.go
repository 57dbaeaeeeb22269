package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  hello world  \n"))
	var out bytes.Buffer

	text, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
	assert.Equal(t, "Say something\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("no newline"))
	var out bytes.Buffer

	text, err := GetSimpleText(reader, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", text)
}

func TestGetSimpleText_EmptyInputReturnsError(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))
	var out bytes.Buffer

	_, err := GetSimpleText(reader, "Say something", &out)
	require.Error(t, err)
}

func TestGetInt(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("42\nnope\n"))
	var out bytes.Buffer

	value, err := GetInt(reader, "Quantity", &out)
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)

	_, err = GetInt(reader, "Quantity", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) {
		return []byte("secret1"), nil
	}
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	assert.Equal(t, []byte("secret1"), pw)
	assert.Equal(t, "Password: \n", out.String())
}

func TestWipe(t *testing.T) {
	b := []byte("secret1")
	wipe(b)
	assert.Equal(t, make([]byte, 7), b)
}
