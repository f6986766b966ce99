package render

import (
	"fmt"

	"github.com/haukened/framelab/internal/lab/domain"
	"github.com/haukened/framelab/internal/lab/wire"
)

// Segment names one contiguous run of bytes within an encoding. Offsets
// and lengths are always measured in encoded bytes, never characters;
// that is the one rule the encoders and the views must agree on. The
// segments for an encoding tile it exactly: each segment starts where
// the previous one ended and the lengths sum to the byte count.
type Segment struct {
	Label  string
	Offset int
	Length int
}

// End returns the offset one past the segment's last byte.
func (s Segment) End() int {
	return s.Offset + s.Length
}

// DNSHeaderSegments maps the fixed 12-byte header layout.
func DNSHeaderSegments() []Segment {
	fields := []domain.HeaderField{
		domain.FieldID, domain.FieldFlags, domain.FieldQDCount,
		domain.FieldANCount, domain.FieldNSCount, domain.FieldARCount,
	}
	segs := make([]Segment, 0, len(fields))
	for _, f := range fields {
		segs = append(segs, Segment{Label: f.String(), Offset: f.Offset(), Length: 2})
	}
	return segs
}

// QuestionSegments maps a question section built from the given name.
// It mirrors the wire encoder's label walk, dropping empty labels, so
// callers must pass the same name they encoded (an empty string for the
// root fallback).
func QuestionSegments(name string) []Segment {
	var segs []Segment
	offset := 0
	for _, label := range splitLabels(name) {
		segs = append(segs, Segment{Label: fmt.Sprintf("len(%s)", label), Offset: offset, Length: 1})
		offset++
		segs = append(segs, Segment{Label: label, Offset: offset, Length: len(label)})
		offset += len(label)
	}
	segs = append(segs, Segment{Label: "root", Offset: offset, Length: 1})
	offset++
	segs = append(segs, Segment{Label: "QTYPE", Offset: offset, Length: 2})
	segs = append(segs, Segment{Label: "QCLASS", Offset: offset + 2, Length: 2})
	return segs
}

// MessageSegments maps a full DNS message: the header fields followed by
// the question segments shifted past the header.
func MessageSegments(name string) []Segment {
	segs := DNSHeaderSegments()
	for _, s := range QuestionSegments(name) {
		s.Offset += domain.DNSHeaderSize
		segs = append(segs, s)
	}
	return segs
}

// TCPHeaderSegments maps the fixed 20-byte header layout.
func TCPHeaderSegments() []Segment {
	return []Segment{
		{Label: "Source Port", Offset: 0, Length: 2},
		{Label: "Destination Port", Offset: 2, Length: 2},
		{Label: "Sequence Number", Offset: 4, Length: 4},
		{Label: "Acknowledgment Number", Offset: 8, Length: 4},
		{Label: "Offset/NS", Offset: 12, Length: 1},
		{Label: "Flags", Offset: 13, Length: 1},
		{Label: "Window", Offset: 14, Length: 2},
		{Label: "Checksum", Offset: 16, Length: 2},
		{Label: "Urgent Pointer", Offset: 18, Length: 2},
	}
}

// HTTPSegments maps the request text into its structural tokens: the
// request line pieces, each header line, the blank line, and the body.
func HTTPSegments(r domain.HTTPRequest) []Segment {
	var segs []Segment
	offset := 0
	push := func(label, text string) {
		if len(text) == 0 {
			return
		}
		segs = append(segs, Segment{Label: label, Offset: offset, Length: len(text)})
		offset += len(text)
	}

	push("Method", r.Method)
	push("SP", " ")
	push("Path", r.Path)
	push("SP", " ")
	push("Version", "HTTP/1.1")
	push("CRLF", wire.CRLF)

	push("Host header", "Host: "+r.Host)
	push("CRLF", wire.CRLF)

	if r.ExtraHeader != "" {
		push("Extra header", r.ExtraHeader)
		push("CRLF", wire.CRLF)
	}

	push("Blank", wire.CRLF)
	push("Body", r.Body)

	return segs
}

// splitLabels mirrors the wire encoder's treatment of the name: split on
// dots and drop empty segments.
func splitLabels(name string) []string {
	var labels []string
	start := 0
	for i := 0; i <= len(name); i++ {
		if i == len(name) || name[i] == '.' {
			if i > start {
				labels = append(labels, name[start:i])
			}
			start = i + 1
		}
	}
	return labels
}
