package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  hello  \n")), "Enter email", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Enter email\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("last")), "p", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "p", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetWithDefault(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\nnew\n"))

	got, err := GetWithDefault(r, "Email", "a@b.c", &out)
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", got)
	assert.Contains(t, out.String(), "Email [a@b.c]")

	got, err = GetWithDefault(r, "Email", "a@b.c", &out)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestGetConfirm(t *testing.T) {
	for in, want := range map[string]bool{
		"y\n":   true,
		"YES\n": true,
		"n\n":   false,
		"\n":    false,
		"ok\n":  false,
	} {
		got, err := GetConfirm(bufio.NewReader(strings.NewReader(in)), "Sure?", io.Discard)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestGetMultiline(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("first line\r\nsecond line\n\nleft over\n"))
	got, err := GetMultiline(r, "Note", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", got)

	rest, err := readLine(r)
	require.NoError(t, err)
	assert.Equal(t, "left over", rest)
}

func TestGetMultiline_EOF(t *testing.T) {
	got, err := GetMultiline(bufio.NewReader(strings.NewReader("only line")), "Note", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "only line", got)

	_, err = GetMultiline(bufio.NewReader(strings.NewReader("")), "Note", io.Discard)
	assert.ErrorIs(t, err, io.EOF)
}

func stubTerminal(t *testing.T, tty bool, pw []byte, pwErr error) {
	t.Helper()
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, pwErr }
	t.Cleanup(func() { isTerminal, readPassword = origTTY, origRead })
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret!!"), nil)

	var out bytes.Buffer
	got, err := GetPassword(bufio.NewReader(strings.NewReader("ignored\n")), &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret!!", got)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	_, err := GetPassword(bufio.NewReader(strings.NewReader("")), io.Discard)
	assert.EqualError(t, err, "boom")
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	got, err := GetPassword(bufio.NewReader(strings.NewReader("piped-pass\n")), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "piped-pass", got)
}
