package wire

import "github.com/haukened/framelab/internal/lab/domain"

// EncodeTCPHeader serializes a 20-byte TCP header. Ports, sequence
// numbers and window are written big-endian through explicit byte
// shifts, so inputs wider than the wire field lose their high bits
// silently rather than being clamped. The checksum and urgent pointer
// bytes (16-19) are always zero; no pseudo-header is modeled.
func EncodeTCPHeader(h domain.TCPHeader) []byte {
	b := make([]byte, domain.TCPHeaderSize)

	b[0] = byte(h.SourcePort >> 8)
	b[1] = byte(h.SourcePort)
	b[2] = byte(h.DestPort >> 8)
	b[3] = byte(h.DestPort)

	b[4] = byte(h.Seq >> 24)
	b[5] = byte(h.Seq >> 16)
	b[6] = byte(h.Seq >> 8)
	b[7] = byte(h.Seq)

	b[8] = byte(h.Ack >> 24)
	b[9] = byte(h.Ack >> 16)
	b[10] = byte(h.Ack >> 8)
	b[11] = byte(h.Ack)

	// High nibble: data offset. Low nibble: three reserved zero bits and
	// NS in the least significant position.
	b[12] = domain.DataOffsetWords << 4
	if h.NS {
		b[12] |= 0x01
	}

	for _, f := range domain.TCPFlags {
		if h.Flag(f) {
			b[13] |= 1 << uint(f)
		}
	}

	b[14] = byte(h.Window >> 8)
	b[15] = byte(h.Window)

	// Bytes 16-19 stay zero: checksum and urgent pointer are out of scope.
	return b
}

// DecodeTCPFlags reverses the flag packing of header bytes 12 and 13.
// The returned header has only NS and the flag-byte booleans populated.
func DecodeTCPFlags(offsetByte, flagByte byte) domain.TCPHeader {
	var h domain.TCPHeader
	h.NS = offsetByte&0x01 == 0x01
	for _, f := range domain.TCPFlags {
		h.SetFlag(f, flagByte&(1<<uint(f)) != 0)
	}
	return h
}
