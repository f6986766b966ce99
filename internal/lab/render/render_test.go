package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "empty", data: nil, want: ""},
		{name: "single byte", data: []byte{0x0F}, want: "0F"},
		{name: "multi byte uppercase", data: []byte{0x1A, 0x33, 0xFF, 0x00}, want: "1A 33 FF 00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.data)
			assert.Equal(t, tt.want, got)

			back, err := ParseHex(got)
			require.NoError(t, err)
			if len(tt.data) == 0 {
				assert.Empty(t, back)
			} else {
				assert.Equal(t, tt.data, back)
			}
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, s := range []string{"G0", "0", "0F 1", "0F ZZ"} {
		_, err := ParseHex(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestBinary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "empty", data: nil, want: ""},
		{name: "single byte", data: []byte{0x02}, want: "00000010"},
		{name: "no separator", data: []byte{0xFF, 0x00}, want: "1111111100000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Binary(tt.data)
			assert.Equal(t, tt.want, got)

			back, err := ParseBinary(got)
			require.NoError(t, err)
			if len(tt.data) == 0 {
				assert.Empty(t, back)
			} else {
				assert.Equal(t, tt.data, back)
			}
		})
	}
}

func TestParseBinaryErrors(t *testing.T) {
	for _, s := range []string{"0101", "0000000x", "111111110"} {
		_, err := ParseBinary(s)
		assert.Error(t, err, "input %q", s)
	}
}
