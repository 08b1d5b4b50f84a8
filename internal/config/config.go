// Package config handles the scratch config file. Settings live in TOML
// at ~/.kilobytetools/config.toml and merge under CLI flags and SCRATCH_*
// environment variables; flags win, then env, then file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. SCRATCH_API_KEY.
	EnvPrefix = "SCRATCH"

	dirName  = ".kilobytetools"
	fileName = "config.toml"
)

// Config is the fully merged view of the file-backed settings.
type Config struct {
	APIKey   string
	Endpoint string
	Format   string
	Push     PushDefaults
}

// PushDefaults are per-push modifiers a user can set once in the config
// file instead of on every invocation. Nil booleans mean "not set", so a
// config default can still be overridden either way on the command line.
type PushDefaults struct {
	Lifetime string
	Private  *bool
	Burn     *bool
	Prefix   string
}

// Keys as they appear in the config file.
const (
	KeyAPIKey       = "api_key"
	KeyEndpoint     = "endpoint"
	KeyFormat       = "response.format"
	KeyPushLifetime = "scratch-push.lifetime"
	KeyPushPrivate  = "scratch-push.private"
	KeyPushBurn     = "scratch-push.burn"
	KeyPushPrefix   = "scratch-push.prefix"
)

// FromViper reads the merged settings out of v.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		APIKey:   v.GetString(KeyAPIKey),
		Endpoint: v.GetString(KeyEndpoint),
		Format:   v.GetString(KeyFormat),
		Push: PushDefaults{
			Lifetime: v.GetString(KeyPushLifetime),
			Prefix:   v.GetString(KeyPushPrefix),
		},
	}
	if v.IsSet(KeyPushPrivate) {
		b := v.GetBool(KeyPushPrivate)
		cfg.Push.Private = &b
	}
	if v.IsSet(KeyPushBurn) {
		b := v.GetBool(KeyPushBurn)
		cfg.Push.Burn = &b
	}
	return cfg
}

// DefaultPath returns ~/.kilobytetools/config.toml, falling back to a
// relative path when the home directory cannot be resolved.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, dirName, fileName)
	}
	return filepath.Join(dirName, fileName)
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Write stores data at path, creating parent directories as needed.
func Write(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

// Starter renders the minimal config bootstrap produces for a fresh
// account.
func Starter(apiKey, endpoint string) string {
	return fmt.Sprintf(`api_key = %q
endpoint = %q

[response]
format = "text/plain"  # or "text/javascript"

[scratch-push]
lifetime = "5m"  # or "120s", "2m", "1h", ...
# burn = false
# private = true
`, apiKey, endpoint)
}
