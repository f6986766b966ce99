// Package render turns encoded byte sequences into the textual forms the
// views display: a hex dump, a binary dump, and byte-accurate field maps.
// Both dumps are lossless; parsing them back yields the original bytes.
package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex renders each byte as two uppercase hex digits, space-separated.
// An empty input renders as an empty string.
func Hex(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// ParseHex inverts Hex. Whitespace between byte pairs is flexible; each
// token must be exactly two hex digits.
func ParseHex(s string) ([]byte, error) {
	fields := strings.Fields(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		if len(f) != 2 {
			return nil, fmt.Errorf("malformed hex byte %q", f)
		}
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("malformed hex byte %q: %w", f, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

// Binary renders each byte as eight '0'/'1' characters, concatenated
// with no separator.
func Binary(data []byte) string {
	var sb strings.Builder
	sb.Grow(8 * len(data))
	for _, b := range data {
		sb.WriteString(fmt.Sprintf("%08b", b))
	}
	return sb.String()
}

// ParseBinary inverts Binary. The input length must be a multiple of
// eight and contain only '0' and '1'.
func ParseBinary(s string) ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, fmt.Errorf("binary string length %d is not a multiple of 8", len(s))
	}
	out := make([]byte, 0, len(s)/8)
	for i := 0; i < len(s); i += 8 {
		v, err := strconv.ParseUint(s[i:i+8], 2, 8)
		if err != nil {
			return nil, fmt.Errorf("malformed binary byte %q: %w", s[i:i+8], err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}
