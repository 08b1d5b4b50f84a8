package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("alice\n"))
	var out bytes.Buffer
	got, err := Line(in, "Enter your handle: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
	assert.Equal(t, "Enter your handle: ", out.String())
}

func TestLineEOFKeepsPartial(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("alice"))
	var out bytes.Buffer
	got, err := Line(in, "Handle: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "alice", got)
}

func TestPassword(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return []byte("hunter2"), nil }

	var out bytes.Buffer
	got, err := Password("Enter your password: ", &out)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
	assert.True(t, strings.HasPrefix(out.String(), "Enter your password: "))
}

func TestPasswordError(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }

	var out bytes.Buffer
	_, err := Password("Enter your password: ", &out)
	require.Error(t, err)
}
