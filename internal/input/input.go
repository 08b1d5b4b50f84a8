// Package input builds push payloads and validates the lightweight
// argument formats the service expects. Validation happens here, before
// any HTTP call; the protocol client sends values as given.
package input

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/kilobytetools/scratch/client"
)

const (
	lifetimePattern = `^\d+(h|m|s)$`
	prefixPattern   = `^[a-zA-Z0-9._\-:|]{1,64}$`
)

// Compiled once at startup and reused immutably.
var (
	lifetimeRE = regexp.MustCompile(lifetimePattern)
	prefixRE   = regexp.MustCompile(prefixPattern)
)

// Lifetime validates a requested expiry such as "10m" or "2h".
func Lifetime(s string) (string, error) {
	text := strings.TrimSpace(s)
	if !lifetimeRE.MatchString(text) {
		return "", malformed("lifetime", s, lifetimePattern)
	}
	return text, nil
}

// Prefix validates a caller-chosen identifier prefix.
func Prefix(s string) (string, error) {
	text := strings.TrimSpace(s)
	if !prefixRE.MatchString(text) {
		return "", malformed("prefix", s, prefixPattern)
	}
	return text, nil
}

func malformed(name, got, pattern string) error {
	return fmt.Errorf("%s was %s but must match %s", name, got, pattern)
}

// FromReader buffers r fully into memory. Used for stdin pushes, where
// the size is unknown until the stream ends.
func FromReader(r io.Reader) (client.Payload, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return client.Payload{}, err
	}
	return client.NewBuffer(data), nil
}

// FromFile opens name and wraps it as a streaming payload sized via Stat.
// The returned closer must be called once the push finishes.
func FromFile(name string) (client.Payload, io.Closer, error) {
	f, err := os.Open(name)
	if err != nil {
		return client.Payload{}, nil, err
	}
	p, err := client.NewFile(f)
	if err != nil {
		f.Close()
		return client.Payload{}, nil, err
	}
	return p, f, nil
}
