package client

import (
	"regexp"
	"strings"
)

// structuredID matches the service's guaranteed minimal create response,
// a single-field object {"id":"<value>"} with optional whitespace around
// the punctuation. This is a deliberate narrow pattern match, not a JSON
// parser: the create endpoint never returns anything else.
var structuredID = regexp.MustCompile(`^\{\s*"id"\s*:\s*"(.*)"\s*\}$`)

// ExtractID recovers the created file identifier from a create-response
// body. For plain text the identifier is the whole body trimmed; for
// javascript it is the captured id field. ok=false means the body did not
// carry an identifier in the given format.
func ExtractID(body string, format Format) (id string, ok bool) {
	switch format {
	case FormatJavascript:
		m := structuredID.FindStringSubmatch(body)
		if m == nil {
			return "", false
		}
		return m[1], true
	case FormatPlainText:
		return strings.TrimSpace(body), true
	default:
		return "", false
	}
}
