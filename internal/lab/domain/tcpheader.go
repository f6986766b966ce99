package domain

// TCPHeaderSize is the fixed length of the encoded TCP header in bytes.
// No options are modeled, so the data offset is always DataOffsetWords.
const TCPHeaderSize = 20

// DataOffsetWords is the constant data-offset nibble: header length in
// 32-bit words. 5 words = 20 bytes, options never present.
const DataOffsetWords = 5

// TCPFlag is a named bit position within the flag byte (byte 13 of the
// header). Bit 0 is the least significant bit.
type TCPFlag uint

// Flag-byte bits, MSB-first on the wire: CWR ECE URG ACK PSH RST SYN FIN.
// NS is not part of this byte; it lives in the low bit of byte 12.
const (
	TCPFlagFIN TCPFlag = 0
	TCPFlagSYN TCPFlag = 1
	TCPFlagRST TCPFlag = 2
	TCPFlagPSH TCPFlag = 3
	TCPFlagACK TCPFlag = 4
	TCPFlagURG TCPFlag = 5
	TCPFlagECE TCPFlag = 6
	TCPFlagCWR TCPFlag = 7
)

// TCPFlags lists the flag-byte bits in wire order (MSB first).
var TCPFlags = []TCPFlag{TCPFlagCWR, TCPFlagECE, TCPFlagURG, TCPFlagACK, TCPFlagPSH, TCPFlagRST, TCPFlagSYN, TCPFlagFIN}

// String returns the conventional name of the flag bit.
func (f TCPFlag) String() string {
	switch f {
	case TCPFlagFIN:
		return "FIN"
	case TCPFlagSYN:
		return "SYN"
	case TCPFlagRST:
		return "RST"
	case TCPFlagPSH:
		return "PSH"
	case TCPFlagACK:
		return "ACK"
	case TCPFlagURG:
		return "URG"
	case TCPFlagECE:
		return "ECE"
	case TCPFlagCWR:
		return "CWR"
	default:
		return "UNKNOWN"
	}
}

// TCPHeader holds the editable fields of a 20-byte TCP header. Scalars
// are kept wider than their wire width on purpose: truncation to 16 or
// 32 bits happens silently at encode time, so an oversized input simply
// loses its high bits the way the byte shifts discard them. Checksum and
// urgent pointer are always emitted as zero and are not modeled here.
type TCPHeader struct {
	SourcePort uint64
	DestPort   uint64
	Seq        uint64
	Ack        uint64
	Window     uint64

	NS  bool
	CWR bool
	ECE bool
	URG bool
	ACK bool
	PSH bool
	RST bool
	SYN bool
	FIN bool
}

// Flag reports the boolean value of the named flag-byte bit.
func (h TCPHeader) Flag(f TCPFlag) bool {
	switch f {
	case TCPFlagFIN:
		return h.FIN
	case TCPFlagSYN:
		return h.SYN
	case TCPFlagRST:
		return h.RST
	case TCPFlagPSH:
		return h.PSH
	case TCPFlagACK:
		return h.ACK
	case TCPFlagURG:
		return h.URG
	case TCPFlagECE:
		return h.ECE
	case TCPFlagCWR:
		return h.CWR
	default:
		return false
	}
}

// SetFlag sets the boolean value of the named flag-byte bit.
func (h *TCPHeader) SetFlag(f TCPFlag, on bool) {
	switch f {
	case TCPFlagFIN:
		h.FIN = on
	case TCPFlagSYN:
		h.SYN = on
	case TCPFlagRST:
		h.RST = on
	case TCPFlagPSH:
		h.PSH = on
	case TCPFlagACK:
		h.ACK = on
	case TCPFlagURG:
		h.URG = on
	case TCPFlagECE:
		h.ECE = on
	case TCPFlagCWR:
		h.CWR = on
	}
}
