package client

// Format is the negotiated response representation.
type Format int

const (
	// FormatUnknown means no representation was negotiated. Requests
	// built without a format omit the Accept header.
	FormatUnknown Format = iota
	// FormatPlainText renders responses as bare text.
	FormatPlainText
	// FormatJavascript renders responses as minimal JSON objects.
	FormatJavascript
)

const (
	contentTypePlainText  = "text/plain"
	contentTypeJavascript = "text/javascript"
)

// formatAliases maps every accepted spelling to its format. Matching is
// case-sensitive, mirroring the service.
var formatAliases = map[string]Format{
	"txt":                 FormatPlainText,
	"text":                FormatPlainText,
	contentTypePlainText:  FormatPlainText,
	"js":                  FormatJavascript,
	"json":                FormatJavascript,
	"javascript":          FormatJavascript,
	contentTypeJavascript: FormatJavascript,
}

// ParseFormat maps a content-type string (or short alias) to a Format.
// Unrecognized values report ok=false rather than an error; callers decide
// whether that is fatal.
func ParseFormat(s string) (Format, bool) {
	f, ok := formatAliases[s]
	return f, ok
}

// ContentType returns the canonical wire content-type for the format, or
// the empty string for FormatUnknown.
func (f Format) ContentType() string {
	switch f {
	case FormatPlainText:
		return contentTypePlainText
	case FormatJavascript:
		return contentTypeJavascript
	default:
		return ""
	}
}
