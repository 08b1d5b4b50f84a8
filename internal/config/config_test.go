package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTOML(t *testing.T, body string) *viper.Viper {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	require.NoError(t, v.ReadInConfig())
	return v
}

func TestFromViper(t *testing.T) {
	v := loadTOML(t, `
api_key = "k123"
endpoint = "https://dp1.kilobytetools.io"

[response]
format = "text/javascript"

[scratch-push]
lifetime = "5m"
private = true
prefix = "ci:"
`)

	cfg := FromViper(v)
	assert.Equal(t, "k123", cfg.APIKey)
	assert.Equal(t, "https://dp1.kilobytetools.io", cfg.Endpoint)
	assert.Equal(t, "text/javascript", cfg.Format)
	assert.Equal(t, "5m", cfg.Push.Lifetime)
	assert.Equal(t, "ci:", cfg.Push.Prefix)
	require.NotNil(t, cfg.Push.Private)
	assert.True(t, *cfg.Push.Private)
	// burn never appears in the file, so it must stay unset rather than
	// defaulting to false.
	assert.Nil(t, cfg.Push.Burn)
}

func TestFromViperEmpty(t *testing.T) {
	cfg := FromViper(viper.New())
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.Endpoint)
	assert.Nil(t, cfg.Push.Private)
	assert.Nil(t, cfg.Push.Burn)
}

func TestOverridesBeatFile(t *testing.T) {
	v := loadTOML(t, `api_key = "from-file"`)
	// Set carries flag-level precedence in viper.
	v.Set(KeyAPIKey, "from-flag")
	assert.Equal(t, "from-flag", FromViper(v).APIKey)
}

func TestStarterRoundTrips(t *testing.T) {
	starter := Starter("issued-key", "https://dp2.kilobytetools.io")
	v := loadTOML(t, starter)

	cfg := FromViper(v)
	assert.Equal(t, "issued-key", cfg.APIKey)
	assert.Equal(t, "https://dp2.kilobytetools.io", cfg.Endpoint)
	assert.Equal(t, "text/plain", cfg.Format)
	assert.Equal(t, "5m", cfg.Push.Lifetime)
	// burn and private ship commented out.
	assert.Nil(t, cfg.Push.Burn)
	assert.Nil(t, cfg.Push.Private)
}

func TestWriteCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	assert.False(t, Exists(path))

	require.NoError(t, Write(path, []byte("api_key = \"x\"\n")))
	assert.True(t, Exists(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "api_key"))
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.True(t, strings.HasSuffix(path, filepath.Join(".kilobytetools", "config.toml")))
}
