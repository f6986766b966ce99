package wire

import (
	"strings"
	"testing"

	"github.com/haukened/framelab/internal/lab/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeQuestion(t *testing.T) {
	tests := []struct {
		name    string
		fqdn    string
		qtype   domain.RRType
		qclass  domain.RRClass
		want    []byte
		wantErr error
	}{
		{
			name:   "www.example.com A IN",
			fqdn:   "www.example.com",
			qtype:  domain.RRTypeA,
			qclass: domain.RRClassIN,
			want: []byte{
				0x03, 'w', 'w', 'w',
				0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
				0x03, 'c', 'o', 'm',
				0x00,
				0x00, 0x01, 0x00, 0x01,
			},
		},
		{
			name:   "root name",
			fqdn:   "",
			qtype:  domain.RRTypeAAAA,
			qclass: domain.RRClassIN,
			want:   []byte{0x00, 0x00, 0x1C, 0x00, 0x01},
		},
		{
			name:   "repeated dots drop empty labels",
			fqdn:   "example..com",
			qtype:  domain.RRTypeA,
			qclass: domain.RRClassIN,
			want: []byte{
				0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
				0x03, 'c', 'o', 'm',
				0x00,
				0x00, 0x01, 0x00, 0x01,
			},
		},
		{
			name:    "oversized label rejected",
			fqdn:    strings.Repeat("a", 64) + ".com",
			qtype:   domain.RRTypeA,
			qclass:  domain.RRClassIN,
			wantErr: ErrLabelTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeQuestion(tt.fqdn, tt.qtype, tt.qclass)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got, "no partial bytes on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Concrete layout from RFC 1035: "www.example.com", QTYPE=1 (A),
// QCLASS=1 (IN) is 21 bytes total.
func TestEncodeQuestionTotalLength(t *testing.T) {
	q, err := EncodeQuestion("www.example.com", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	assert.Len(t, q, 21)
}

func TestEncodeQuestionTrailingDot(t *testing.T) {
	plain, err := EncodeQuestion("example.com", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	dotted, err := EncodeQuestion("example.com.", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)
	assert.Equal(t, plain, dotted, "trailing empty label must be dropped")
}

// A label at exactly 63 bytes is legal; 64 is not. Length is measured in
// encoded bytes, so a multi-byte label can trip the limit with fewer
// characters.
func TestEncodeQuestionLabelBoundary(t *testing.T) {
	ok, err := EncodeQuestion(strings.Repeat("a", 63)+".com", domain.RRTypeA, domain.RRClassIN)
	assert.NoError(t, err)
	assert.NotNil(t, ok)

	// 32 two-byte runes encode to 64 bytes.
	_, err = EncodeQuestion(strings.Repeat("é", 32), domain.RRTypeA, domain.RRClassIN)
	assert.ErrorIs(t, err, ErrLabelTooLong)
}

func TestRootQuestionFallback(t *testing.T) {
	q := RootQuestion(domain.RRTypeMX, domain.RRClassIN)
	assert.Equal(t, []byte{0x00, 0x00, 0x0F, 0x00, 0x01}, q)
}

func TestDecodeQuestionRoundTrip(t *testing.T) {
	names := []string{
		"www.example.com",
		"example.com",
		"a.b.c.d.e",
		strings.Repeat("x", 63) + ".example",
		"",
	}
	for _, name := range names {
		t.Run("name="+name, func(t *testing.T) {
			encoded, err := EncodeQuestion(name, domain.RRTypeTXT, domain.RRClassCH)
			require.NoError(t, err)
			assert.Equal(t, byte(0), encoded[len(encoded)-5], "name must end with the root byte")

			gotName, gotType, gotClass, err := DecodeQuestion(encoded)
			require.NoError(t, err)
			assert.Equal(t, name, gotName)
			assert.Equal(t, domain.RRTypeTXT, gotType)
			assert.Equal(t, domain.RRClassCH, gotClass)
		})
	}
}

func TestDecodeQuestionTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "no terminator", data: []byte{0x03, 'w', 'w', 'w'}},
		{name: "label overruns", data: []byte{0x08, 'w', 'w', 'w', 0x00}},
		{name: "missing tail", data: []byte{0x00, 0x00, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := DecodeQuestion(tt.data)
			assert.Error(t, err)
		})
	}
}

func TestEncodeHeaderScenario(t *testing.T) {
	// ID=0x1A33, RD=1, QDCOUNT=1, everything else default.
	var h domain.DNSHeader
	h.SetField(domain.FieldID, 0x1A33)
	h.SetFlag(domain.FlagRD, true)
	h.SetField(domain.FieldQDCount, 1)

	assert.Equal(t, uint16(0x0100), h.Field(domain.FieldFlags))
	want := []byte{0x1A, 0x33, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	assert.Equal(t, want, EncodeHeader(h))
}

func TestEncodeHeaderAlwaysTwelveBytes(t *testing.T) {
	inputs := []int{-1000, 0, 1, 65535, 1 << 20}
	for _, v := range inputs {
		var h domain.DNSHeader
		for _, f := range []domain.HeaderField{
			domain.FieldID, domain.FieldFlags, domain.FieldQDCount,
			domain.FieldANCount, domain.FieldNSCount, domain.FieldARCount,
		} {
			h.SetField(f, v)
		}
		assert.Len(t, EncodeHeader(h), 12, "input %d", v)
	}
}

func TestEncodeMessage(t *testing.T) {
	var h domain.DNSHeader
	h.SetField(domain.FieldID, 0x0102)
	// QDCOUNT deliberately inconsistent with the question section; the
	// message must still concatenate without complaint.
	h.SetField(domain.FieldQDCount, 7)

	q, err := EncodeQuestion("example.com", domain.RRTypeA, domain.RRClassIN)
	require.NoError(t, err)

	msg := EncodeMessage(EncodeHeader(h), q)
	assert.Len(t, msg, 12+len(q))
	assert.Equal(t, EncodeHeader(h), msg[:12])
	assert.Equal(t, q, msg[12:])
}
