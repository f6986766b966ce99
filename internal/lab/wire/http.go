package wire

import (
	"strings"

	"github.com/haukened/framelab/internal/lab/domain"
)

// CRLF is the HTTP/1.1 line terminator.
const CRLF = "\r\n"

// BuildRequestText assembles the literal request text: request line,
// Host header, the optional extra header line exactly as typed, a blank
// line, then the body with no terminator appended.
func BuildRequestText(r domain.HTTPRequest) string {
	var sb strings.Builder

	sb.WriteString(r.Method)
	sb.WriteString(" ")
	sb.WriteString(r.Path)
	sb.WriteString(" HTTP/1.1")
	sb.WriteString(CRLF)

	sb.WriteString("Host: ")
	sb.WriteString(r.Host)
	sb.WriteString(CRLF)

	if r.ExtraHeader != "" {
		sb.WriteString(r.ExtraHeader)
		sb.WriteString(CRLF)
	}

	sb.WriteString(CRLF)
	sb.WriteString(r.Body)

	return sb.String()
}

// RequestBytes is the UTF-8 byte form of the request text. The hex and
// binary views operate on these bytes, so lengths are measured in
// encoded bytes rather than characters.
func RequestBytes(r domain.HTTPRequest) []byte {
	return []byte(BuildRequestText(r))
}
