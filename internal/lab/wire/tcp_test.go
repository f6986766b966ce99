package wire

import (
	"testing"

	"github.com/haukened/framelab/internal/lab/domain"
	"github.com/stretchr/testify/assert"
)

func TestEncodeTCPHeaderSYN(t *testing.T) {
	h := domain.TCPHeader{SYN: true}
	b := EncodeTCPHeader(h)

	assert.Len(t, b, 20)
	assert.Equal(t, byte(0x50), b[12], "data offset 5, NS clear")
	assert.Equal(t, byte(0x02), b[13], "SYN alone")
}

func TestEncodeTCPHeaderSYNACK(t *testing.T) {
	h := domain.TCPHeader{SYN: true, ACK: true}
	b := EncodeTCPHeader(h)
	assert.Equal(t, byte(0x12), b[13])
}

func TestEncodeTCPHeaderScalars(t *testing.T) {
	h := domain.TCPHeader{
		SourcePort: 0x1F90,     // 8080
		DestPort:   0x0050,     // 80
		Seq:        0x01020304,
		Ack:        0xA0B0C0D0,
		Window:     0xFFFF,
	}
	b := EncodeTCPHeader(h)

	assert.Equal(t, []byte{0x1F, 0x90}, b[0:2])
	assert.Equal(t, []byte{0x00, 0x50}, b[2:4])
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b[4:8])
	assert.Equal(t, []byte{0xA0, 0xB0, 0xC0, 0xD0}, b[8:12])
	assert.Equal(t, []byte{0xFF, 0xFF}, b[14:16])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, b[16:20], "checksum and urgent pointer always zero")
}

// Oversized inputs lose their high bits through the byte shifts; nothing
// clamps and nothing errors.
func TestEncodeTCPHeaderTruncation(t *testing.T) {
	h := domain.TCPHeader{
		SourcePort: 65536 + 443,        // wraps to 443
		DestPort:   1<<20 | 0x0035,     // low 16 bits survive
		Seq:        1<<40 | 0x11223344, // low 32 bits survive
		Window:     1<<17 | 0x00FF,
	}
	b := EncodeTCPHeader(h)

	assert.Equal(t, []byte{0x01, 0xBB}, b[0:2])
	assert.Equal(t, []byte{0x00, 0x35}, b[2:4])
	assert.Equal(t, []byte{0x11, 0x22, 0x33, 0x44}, b[4:8])
	assert.Equal(t, []byte{0x00, 0xFF}, b[14:16])
}

func TestEncodeTCPHeaderNS(t *testing.T) {
	h := domain.TCPHeader{NS: true}
	b := EncodeTCPHeader(h)
	assert.Equal(t, byte(0x51), b[12], "NS is the low bit of the offset byte")
	assert.Equal(t, byte(0x00), b[13])
}

func TestEncodeTCPHeaderAlwaysTwentyBytes(t *testing.T) {
	headers := []domain.TCPHeader{
		{},
		{SourcePort: 1 << 60, DestPort: 1 << 60, Seq: 1 << 60, Ack: 1 << 60, Window: 1 << 60},
		{NS: true, CWR: true, ECE: true, URG: true, ACK: true, PSH: true, RST: true, SYN: true, FIN: true},
	}
	for i, h := range headers {
		assert.Len(t, EncodeTCPHeader(h), 20, "header %d", i)
	}
}

// Every combination of the nine booleans must survive a trip through
// bytes 12 and 13 bit-for-bit.
func TestTCPFlagsRoundTrip(t *testing.T) {
	for combo := 0; combo < 1<<9; combo++ {
		var h domain.TCPHeader
		h.NS = combo&(1<<8) != 0
		for _, f := range domain.TCPFlags {
			h.SetFlag(f, combo&(1<<uint(f)) != 0)
		}

		b := EncodeTCPHeader(h)
		got := DecodeTCPFlags(b[12], b[13])

		assert.Equal(t, h.NS, got.NS, "combo %09b NS", combo)
		for _, f := range domain.TCPFlags {
			assert.Equal(t, h.Flag(f), got.Flag(f), "combo %09b flag %s", combo, f)
		}
	}
}

func TestDecodeTCPFlagsIgnoresReservedBits(t *testing.T) {
	// Reserved bits 1-3 of the offset byte must not leak into NS.
	got := DecodeTCPFlags(0x5E, 0x00)
	assert.False(t, got.NS)

	got = DecodeTCPFlags(0x5F, 0x00)
	assert.True(t, got.NS)
}
