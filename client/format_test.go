package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatAliases(t *testing.T) {
	cases := map[string]Format{
		"txt":             FormatPlainText,
		"text":            FormatPlainText,
		"text/plain":      FormatPlainText,
		"js":              FormatJavascript,
		"json":            FormatJavascript,
		"javascript":      FormatJavascript,
		"text/javascript": FormatJavascript,
	}
	for alias, want := range cases {
		got, ok := ParseFormat(alias)
		require.True(t, ok, "alias %q", alias)
		assert.Equal(t, want, got, "alias %q", alias)
	}
}

// Every alias round-trips to a canonical content type that parses back to
// the same format.
func TestParseFormatCanonicalStable(t *testing.T) {
	for alias := range formatAliases {
		f, ok := ParseFormat(alias)
		require.True(t, ok)

		canonical := f.ContentType()
		again, ok := ParseFormat(canonical)
		require.True(t, ok, "canonical %q", canonical)
		assert.Equal(t, f, again)
		assert.Equal(t, canonical, again.ContentType())
	}
}

func TestParseFormatUnrecognized(t *testing.T) {
	for _, s := range []string{"", "TXT", "Text/Plain", "application/json", "text/plain; charset=utf-8"} {
		_, ok := ParseFormat(s)
		assert.False(t, ok, "input %q", s)
	}
}

func TestFormatUnknownContentType(t *testing.T) {
	assert.Equal(t, "", FormatUnknown.ContentType())
}
