// Package domain defines the protocol field models the lab views edit.
// All types are plain values; mutation happens in the UI layer and the
// wire encoders are called fresh on every change.
package domain

import "encoding/binary"

// DNSHeaderSize is the fixed length of a DNS message header in bytes.
const DNSHeaderSize = 12

// HeaderField identifies one of the six 16-bit words of a DNS header.
type HeaderField int

// DNS header fields in wire order. Each occupies two bytes, so the byte
// offset of a field is 2*int(field).
const (
	FieldID HeaderField = iota
	FieldFlags
	FieldQDCount
	FieldANCount
	FieldNSCount
	FieldARCount
)

// String returns the RFC 1035 name of the header field.
func (f HeaderField) String() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldFlags:
		return "FLAGS"
	case FieldQDCount:
		return "QDCOUNT"
	case FieldANCount:
		return "ANCOUNT"
	case FieldNSCount:
		return "NSCOUNT"
	case FieldARCount:
		return "ARCOUNT"
	default:
		return "UNKNOWN"
	}
}

// Offset returns the byte offset of the field within the 12-byte header.
func (f HeaderField) Offset() int {
	return 2 * int(f)
}

// HeaderFlag is a named single-bit position within the FLAGS word.
// Bit 0 is the least significant bit of the 16-bit word.
type HeaderFlag uint

// Named FLAGS bits. Opcode (bits 11-14), Z (bits 4-6) and RCODE
// (bits 0-3) are not named here; edits must leave them untouched.
const (
	FlagRA HeaderFlag = 7
	FlagRD HeaderFlag = 8
	FlagTC HeaderFlag = 9
	FlagAA HeaderFlag = 10
	FlagQR HeaderFlag = 15
)

// HeaderFlags lists the editable FLAGS bits in display order.
var HeaderFlags = []HeaderFlag{FlagQR, FlagAA, FlagTC, FlagRD, FlagRA}

// String returns the conventional name of the flag bit.
func (f HeaderFlag) String() string {
	switch f {
	case FlagQR:
		return "QR"
	case FlagAA:
		return "AA"
	case FlagTC:
		return "TC"
	case FlagRD:
		return "RD"
	case FlagRA:
		return "RA"
	default:
		return "UNKNOWN"
	}
}

// DNSHeader is the raw 12-byte DNS header. The zero value is a valid
// all-zero header.
type DNSHeader struct {
	raw [DNSHeaderSize]byte
}

// Bytes returns a copy of the raw header bytes.
func (h DNSHeader) Bytes() []byte {
	out := make([]byte, DNSHeaderSize)
	copy(out, h.raw[:])
	return out
}

// Field reads the 16-bit big-endian value of the given header field.
func (h DNSHeader) Field(f HeaderField) uint16 {
	return binary.BigEndian.Uint16(h.raw[f.Offset():])
}

// SetField writes a scalar header field, clamping the value into
// [0, 65535]. Numeric inputs arrive from free-form text widgets, so
// out-of-range and negative values are clamped rather than rejected.
func (h *DNSHeader) SetField(f HeaderField, v int) {
	if v < 0 {
		v = 0
	}
	if v > 0xFFFF {
		v = 0xFFFF
	}
	binary.BigEndian.PutUint16(h.raw[f.Offset():], uint16(v))
}

// Flag reports whether the named bit of the FLAGS word is set.
func (h DNSHeader) Flag(f HeaderFlag) bool {
	return (h.Field(FieldFlags)>>uint16(f))&1 == 1
}

// SetFlag sets or clears a single FLAGS bit, leaving every other bit of
// the word untouched. Reserved and unnamed bits survive edits bit-for-bit.
func (h *DNSHeader) SetFlag(f HeaderFlag, on bool) {
	word := h.Field(FieldFlags)
	if on {
		word |= 1 << uint16(f)
	} else {
		word &^= 1 << uint16(f)
	}
	binary.BigEndian.PutUint16(h.raw[FieldFlags.Offset():], word)
}
