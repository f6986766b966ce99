// Package utils holds small helpers shared by the views.
package utils

import (
	"strings"

	"golang.org/x/net/idna"
)

// CanonicalDNSName returns a DNS name in canonical form:
// - Lowercased
// - Trimmed of surrounding whitespace
// - No trailing dot
// Used for preset lookups and display; encoding always works on the
// name exactly as typed.
func CanonicalDNSName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	for strings.HasSuffix(name, ".") {
		name = strings.TrimSuffix(name, ".")
	}
	return name
}

// ASCIIForm returns the IDNA (punycode) form of a domain name. The DNS
// view shows it as a hint next to non-ASCII names; the encoder itself
// always emits the literal UTF-8 label bytes. Names that fail IDNA
// mapping come back unchanged.
func ASCIIForm(name string) string {
	ascii, err := idna.Lookup.ToASCII(CanonicalDNSName(name))
	if err != nil {
		return name
	}
	return ascii
}

// IsASCII reports whether every byte of s is 7-bit ASCII.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}
