package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifetime(t *testing.T) {
	for _, ok := range []string{"10m", "2h", "120s", " 5m "} {
		got, err := Lifetime(ok)
		require.NoError(t, err, "input %q", ok)
		assert.Equal(t, strings.TrimSpace(ok), got)
	}
	for _, bad := range []string{"", "10", "m", "10d", "10 m", "h10", "-5m"} {
		_, err := Lifetime(bad)
		require.Error(t, err, "input %q", bad)
		assert.Contains(t, err.Error(), "must match")
	}
}

func TestPrefix(t *testing.T) {
	for _, ok := range []string{"creds.aws:", "a", "A-b_c.d|e:f", strings.Repeat("x", 64)} {
		_, err := Prefix(ok)
		require.NoError(t, err, "input %q", ok)
	}
	for _, bad := range []string{"", "has space", "slash/", strings.Repeat("x", 65), "é"} {
		_, err := Prefix(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestFromReader(t *testing.T) {
	p, err := FromReader(strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Size())
}

func TestFromFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(name, []byte("file data"), 0o600))

	p, closer, err := FromFile(name)
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, int64(len("file data")), p.Size())
}

func TestFromFileMissing(t *testing.T) {
	_, _, err := FromFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
