// Package wire encodes the lab's protocol models into their byte form.
// Every function is a pure function of its inputs: the same state always
// produces byte-identical output, and nothing is retained between calls.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/haukened/framelab/internal/lab/domain"
)

// MaxLabelLength is the longest DNS label the wire format can carry:
// the length prefix is a single byte and the two high bits are reserved
// for compression pointers.
const MaxLabelLength = 63

// ErrLabelTooLong is returned when a dot-separated label encodes to more
// than MaxLabelLength bytes. Callers recover by substituting the root
// encoding (EncodeQuestion with an empty name) and keep rendering.
var ErrLabelTooLong = errors.New("dns label exceeds 63 bytes")

// EncodeHeader serializes the six 16-bit header fields. The result is
// always exactly 12 bytes regardless of field values.
func EncodeHeader(h domain.DNSHeader) []byte {
	return h.Bytes()
}

// EncodeQuestion serializes a question section: length-prefixed labels
// terminated by the root byte, then QTYPE and QCLASS as big-endian
// 16-bit values. Empty labels are dropped, so "example.com." and
// "example..com" encode the same as "example.com". Label lengths are
// measured in encoded bytes, not characters. On error no partial bytes
// are returned.
func EncodeQuestion(name string, qtype domain.RRType, qclass domain.RRClass) ([]byte, error) {
	var buf bytes.Buffer

	for _, label := range strings.Split(name, ".") {
		if len(label) > MaxLabelLength {
			return nil, fmt.Errorf("%w: %q is %d bytes", ErrLabelTooLong, label, len(label))
		}
		if len(label) > 0 { // Skip empty labels
			buf.WriteByte(byte(len(label)))
			buf.WriteString(label)
		}
	}
	buf.WriteByte(0) // End of name
	_ = binary.Write(&buf, binary.BigEndian, uint16(qtype))
	_ = binary.Write(&buf, binary.BigEndian, uint16(qclass))

	return buf.Bytes(), nil
}

// RootQuestion returns the minimal valid question encoding: the root
// name (a single zero byte) followed by QTYPE and QCLASS. This is the
// fallback substituted when EncodeQuestion rejects a label.
func RootQuestion(qtype domain.RRType, qclass domain.RRClass) []byte {
	q, _ := EncodeQuestion("", qtype, qclass)
	return q
}

// EncodeMessage concatenates a header and a question section. The header
// counts are independent user-editable values and are deliberately never
// cross-checked against the question bytes: the tool allows constructing
// inconsistent packets for illustration.
func EncodeMessage(header, question []byte) []byte {
	msg := make([]byte, 0, len(header)+len(question))
	msg = append(msg, header...)
	msg = append(msg, question...)
	return msg
}

// DecodeQuestion reverses EncodeQuestion. It reads labels until the root
// byte, then QTYPE and QCLASS. Compression pointers are not handled
// because EncodeQuestion never emits them.
func DecodeQuestion(data []byte) (string, domain.RRType, domain.RRClass, error) {
	var labels []string
	offset := 0
	for {
		if offset >= len(data) {
			return "", 0, 0, errors.New("truncated name")
		}
		length := int(data[offset])
		offset++
		if length == 0 {
			break
		}
		if offset+length > len(data) {
			return "", 0, 0, errors.New("label length out of bounds")
		}
		labels = append(labels, string(data[offset:offset+length]))
		offset += length
	}
	if offset+4 > len(data) {
		return "", 0, 0, errors.New("truncated question fields")
	}
	qtype := binary.BigEndian.Uint16(data[offset : offset+2])
	qclass := binary.BigEndian.Uint16(data[offset+2 : offset+4])
	return strings.Join(labels, "."), domain.RRType(qtype), domain.RRClass(qclass), nil
}
